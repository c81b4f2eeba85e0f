package persistence

import (
	"context"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// TransactionRepository defines the persistence operations for wallet
// transactions. Submission and settlement methods that touch the balance run
// inside a single database transaction with the profile row locked, so two
// concurrent withdrawals cannot both spend the same balance.
type TransactionRepository interface {
	// CreateDeposit persists a pending deposit. No balance effect.
	//
	// Possible errors:
	// - ErrDatabaseConnection: database failure
	CreateDeposit(ctx context.Context, txn *entity.Transaction) error

	// CreateWithdrawal atomically debits the owner's balance and persists the
	// pending withdrawal in one database transaction. The debit only happens
	// when the locked balance covers the amount.
	//
	// Possible errors:
	// - ErrUserNotFound: no profile for this user
	// - ErrInsufficientBalance: balance below the withdrawal amount
	// - ErrDatabaseConnection: database failure
	CreateWithdrawal(ctx context.Context, txn *entity.Transaction) error

	// ListByUser returns a user's own transactions, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)

	// List returns all transactions, newest first, optionally filtered by
	// status. An empty status returns everything.
	List(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error)

	// Settle transitions a pending transaction to the given terminal status
	// and applies its balance effect in one database transaction: the
	// transaction row is locked, re-checked for pending status, and the
	// owner's balance is credited when the decision calls for it.
	//
	// Possible errors:
	// - ErrTransactionNotFound: no such transaction
	// - ErrAlreadyProcessed: the transaction is no longer pending
	// - ErrDatabaseConnection: database failure
	Settle(ctx context.Context, id uint64, decision entity.TransactionStatus, adminNote string) (*entity.Transaction, error)
}
