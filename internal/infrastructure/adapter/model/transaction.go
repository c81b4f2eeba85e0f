package model

import (
	"time"
)

// Transaction represents the database model for wallet transactions
type Transaction struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	UserID             string    `gorm:"not null;index;size:255"`
	Type               string    `gorm:"not null;size:50"`
	AmountInCents      int64     `gorm:"not null"`
	Status             string    `gorm:"not null;size:50;index"`
	ProofImageURL      string    `gorm:"type:text"`
	DestinationAccount string    `gorm:"size:255"`
	AdminNote          string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null"`
	ProcessedAt        *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
