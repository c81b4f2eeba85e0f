package entity

import (
	"time"

	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
)

// Default attribute values for freshly created profiles
const (
	// DefaultWinRate is the display-only win rate a new profile starts with
	DefaultWinRate = 50
)

// Profile holds a user's spendable balance and administrative flags.
// It links 1:1 to an external identity record via UserID.
type Profile struct {
	ID                uint64
	UserID            string
	balance           int64 // Balance stored in cents to avoid floating point issues (private)
	IsAdmin           bool
	IsFrozen          bool
	WinRate           int // Percentage 0-100, display-only
	PhoneNumber       string
	BankName          string
	BankAccountNumber string
	BankAccountName   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewProfile creates a profile for the given identity with an initial balance in cents
func NewProfile(userID string, initialBalanceInCents int64, timeProvider coreport.TimeProvider) (*Profile, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if initialBalanceInCents < 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &Profile{
		UserID:    userID,
		balance:   initialBalanceInCents,
		WinRate:   DefaultWinRate,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in cents
func (p *Profile) Balance() int64 {
	return p.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (p *Profile) FormattedBalance() string {
	return AmountInCentsToString(p.balance)
}

// SetBalance overwrites the balance directly (repository hydration and admin override)
func (p *Profile) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	p.balance = balanceInCents
	p.UpdatedAt = timeProvider.Now()
}

// CanWithdraw reports whether the balance covers a withdrawal of the given amount
func (p *Profile) CanWithdraw(amountInCents int64) bool {
	return p.balance >= amountInCents
}

// CanPlay reports whether the profile passes the game access gate:
// not frozen and balance at or above the configured minimum.
func (p *Profile) CanPlay(minBalanceInCents int64) error {
	if p.IsFrozen {
		return errs.ErrAccountFrozen
	}
	if p.balance < minBalanceInCents {
		return errs.ErrBalanceTooLow
	}
	return nil
}

// SetWinRate updates the win rate after range validation
func (p *Profile) SetWinRate(winRate int, timeProvider coreport.TimeProvider) error {
	if winRate < 0 || winRate > 100 {
		return errs.ErrInvalidWinRate
	}
	p.WinRate = winRate
	p.UpdatedAt = timeProvider.Now()
	return nil
}
