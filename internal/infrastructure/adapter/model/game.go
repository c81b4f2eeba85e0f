package model

import (
	"time"
)

// Game represents the database model for catalog entries
type Game struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"not null;size:255"`
	Provider  string    `gorm:"not null;size:100"`
	ImageURL  string    `gorm:"not null;type:text"`
	PlayURL   string    `gorm:"not null;type:text"`
	Slug      string    `gorm:"uniqueIndex;not null;size:255"`
	Category  string    `gorm:"not null;size:100;default:slots"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}

// GameSession represents the database model for play-launch records
type GameSession struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          string    `gorm:"not null;index;size:255"`
	GameID          uint64    `gorm:"not null;index"`
	StartTime       time.Time `gorm:"not null"`
	EndTime         *time.Time
	TotalBetInCents int64 `gorm:"not null;default:0"`
	TotalWinInCents int64 `gorm:"not null;default:0"`

	Game Game `gorm:"foreignKey:GameID;references:ID"`
}

// TableName specifies the table name for GameSession
func (GameSession) TableName() string {
	return "game_sessions"
}
