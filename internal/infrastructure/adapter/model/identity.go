package model

import (
	"time"
)

// Identity mirrors the external auth provider's user table. The portal only
// reads these rows.
type Identity struct {
	ID              string    `gorm:"primaryKey;size:255"`
	Email           string    `gorm:"size:255"`
	FirstName       string    `gorm:"size:255"`
	LastName        string    `gorm:"size:255"`
	ProfileImageURL string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Identity
func (Identity) TableName() string {
	return "identities"
}

// Session is an auth session row written by the external auth provider
type Session struct {
	Token     string    `gorm:"primaryKey;size:255"`
	UserID    string    `gorm:"not null;index;size:255"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}
