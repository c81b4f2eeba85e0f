package entity

import "time"

// Game is a catalog entry for an externally hosted slot game.
// Gameplay itself is delegated to the provider behind PlayURL.
type Game struct {
	ID        uint64
	Title     string
	Provider  string
	ImageURL  string
	PlayURL   string
	Slug      string
	Category  string
	IsActive  bool
	CreatedAt time.Time
}

// GameSession is an append-only record of a play-launch event.
// Bet and win totals default to zero; nothing in the portal reads them back.
type GameSession struct {
	ID              uint64
	UserID          string
	GameID          uint64
	StartTime       time.Time
	EndTime         *time.Time
	TotalBetInCents int64
	TotalWinInCents int64
}
