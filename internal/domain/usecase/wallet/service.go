package wallet

import (
	"context"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
)

// Params holds the tunable amounts of the transaction workflow
type Params struct {
	// MinAmountInCents applies to both deposits and withdrawals
	MinAmountInCents int64
}

// Service implements the transaction workflow: deposit and withdrawal
// submission, the user's history, the admin listing and settlement.
//
// The two sides are deliberately asymmetric. A deposit is an unverified claim
// (a transfer receipt) until an admin confirms the money arrived, so the
// credit is deferred to approval. A withdrawal debits the balance at
// submission so the same funds cannot be spent twice while it is pending,
// with a refund on rejection as the compensating action.
type Service struct {
	txnRepo      persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	params       Params
}

// NewService creates a new wallet service
func NewService(
	txnRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	params Params,
) *Service {
	return &Service{
		txnRepo:      txnRepo,
		timeProvider: timeProvider,
		logger:       logger,
		params:       params,
	}
}

// SubmitDeposit creates a pending deposit request. The balance is untouched
// until an admin approves it.
func (s *Service) SubmitDeposit(ctx context.Context, userID string, amountInCents int64, proofImageURL string) (*entity.Transaction, error) {
	if amountInCents < s.params.MinAmountInCents {
		return nil, errs.ErrAmountBelowMinimum
	}

	txn, err := entity.NewDeposit(userID, amountInCents, proofImageURL, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.CreateDeposit(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Deposit submitted", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.ID,
		"amount":         txn.FormattedAmount(),
	})
	return txn, nil
}

// SubmitWithdraw creates a pending withdrawal request, debiting the balance
// at submission time. The debit and the insert happen in one database
// transaction; an insufficient balance leaves everything untouched.
func (s *Service) SubmitWithdraw(ctx context.Context, userID string, amountInCents int64, destinationAccount string) (*entity.Transaction, error) {
	if amountInCents < s.params.MinAmountInCents {
		return nil, errs.ErrAmountBelowMinimum
	}

	txn, err := entity.NewWithdrawal(userID, amountInCents, destinationAccount, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.CreateWithdrawal(ctx, txn); err != nil {
		if errs.IsInsufficientBalanceError(err) {
			s.logger.Warn("Withdrawal rejected: insufficient balance", map[string]any{
				"user_id": userID,
				"amount":  txn.FormattedAmount(),
			})
		}
		return nil, err
	}

	s.logger.Info("Withdrawal submitted, balance debited", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.ID,
		"amount":         txn.FormattedAmount(),
	})
	return txn, nil
}

// History returns the user's own transactions, newest first
func (s *Service) History(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return s.txnRepo.ListByUser(ctx, userID)
}

// ListTransactions returns all transactions for the admin console, newest
// first, optionally filtered by status. An empty filter returns everything.
func (s *Service) ListTransactions(ctx context.Context, statusFilter string) ([]*entity.Transaction, error) {
	status := entity.TransactionStatus(statusFilter)
	switch status {
	case "", entity.StatusPending, entity.StatusApproved, entity.StatusRejected:
	default:
		return nil, errs.ErrInvalidRequest
	}
	return s.txnRepo.List(ctx, status)
}

// Settle transitions a pending transaction to approved or rejected and
// applies its balance effect. Settling a non-pending transaction fails with
// ErrAlreadyProcessed and has no balance effect.
func (s *Service) Settle(ctx context.Context, transactionID uint64, decision string, adminNote string) (*entity.Transaction, error) {
	status := entity.TransactionStatus(decision)
	if status != entity.StatusApproved && status != entity.StatusRejected {
		return nil, errs.ErrInvalidDecision
	}

	txn, err := s.txnRepo.Settle(ctx, transactionID, status, adminNote)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction settled", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        txn.UserID,
		"type":           string(txn.Type),
		"decision":       string(status),
		"amount":         txn.FormattedAmount(),
	})
	return txn, nil
}
