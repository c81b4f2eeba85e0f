package entity

import (
	"time"

	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
)

// TransactionType distinguishes deposits from withdrawals
type TransactionType string

// Transaction types
const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
)

// TransactionStatus defines the settlement state of a transaction
type TransactionStatus string

// Transaction statuses: pending is initial, approved and rejected are terminal
const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

// Transaction represents a deposit or withdrawal request awaiting admin settlement
type Transaction struct {
	ID                 uint64
	UserID             string
	Type               TransactionType
	AmountInCents      int64
	Status             TransactionStatus
	ProofImageURL      string // Deposits only: link to the transfer receipt
	DestinationAccount string // Withdrawals only: payout account
	AdminNote          string
	CreatedAt          time.Time
	ProcessedAt        *time.Time
}

// NewDeposit creates a pending deposit request. Deposits have no balance
// effect until an admin approves them.
func NewDeposit(userID string, amountInCents int64, proofImageURL string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amountInCents <= 0 {
		return nil, errs.ErrNegativeAmount
	}

	return &Transaction{
		UserID:        userID,
		Type:          TypeDeposit,
		AmountInCents: amountInCents,
		Status:        StatusPending,
		ProofImageURL: proofImageURL,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// NewWithdrawal creates a pending withdrawal request. The balance debit
// happens at submission time, not here.
func NewWithdrawal(userID string, amountInCents int64, destinationAccount string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amountInCents <= 0 {
		return nil, errs.ErrNegativeAmount
	}

	return &Transaction{
		UserID:             userID,
		Type:               TypeWithdraw,
		AmountInCents:      amountInCents,
		Status:             StatusPending,
		DestinationAccount: destinationAccount,
		CreatedAt:          timeProvider.Now(),
	}, nil
}

// IsPending reports whether the transaction is still awaiting settlement
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// Settle transitions the transaction out of pending exactly once.
// A non-pending transaction cannot be settled again.
func (t *Transaction) Settle(decision TransactionStatus, note string, timeProvider coreport.TimeProvider) error {
	if decision != StatusApproved && decision != StatusRejected {
		return errs.ErrInvalidDecision
	}
	if !t.IsPending() {
		return errs.ErrAlreadyProcessed
	}

	now := timeProvider.Now()
	t.Status = decision
	t.AdminNote = note
	t.ProcessedAt = &now
	return nil
}

// BalanceEffect returns the signed cent amount the given decision applies to
// the owner's balance:
//   - approved deposit credits the amount (money confirmed received)
//   - rejected withdrawal refunds the amount debited at submission
//   - approved withdrawal and rejected deposit change nothing
func (t *Transaction) BalanceEffect(decision TransactionStatus) int64 {
	switch {
	case decision == StatusApproved && t.Type == TypeDeposit:
		return t.AmountInCents
	case decision == StatusRejected && t.Type == TypeWithdraw:
		return t.AmountInCents
	default:
		return 0
	}
}

// FormattedAmount returns the amount as a string with 2 decimal places
func (t *Transaction) FormattedAmount() string {
	return AmountInCentsToString(t.AmountInCents)
}
