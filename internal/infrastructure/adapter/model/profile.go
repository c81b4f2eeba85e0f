package model

import (
	"time"
)

// Profile represents the database model for portal profiles
type Profile struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	UserID            string    `gorm:"uniqueIndex;not null;size:255"`
	Balance           int64     `gorm:"not null"` // Balance in cents
	IsAdmin           bool      `gorm:"not null;default:false"`
	IsFrozen          bool      `gorm:"not null;default:false"`
	WinRate           int       `gorm:"not null;default:50"`
	PhoneNumber       string    `gorm:"size:50"`
	BankName          string    `gorm:"size:255"`
	BankAccountNumber string    `gorm:"size:255"`
	BankAccountName   string    `gorm:"size:255"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
