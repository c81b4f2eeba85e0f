package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coremocks "github.com/ramadhanf/slot-portal/mocks/port/core"
	persistencemocks "github.com/ramadhanf/slot-portal/mocks/port/persistence"
)

var testParams = Params{
	MinAmountInCents: 1000000, // 10000.00
}

type walletMocks struct {
	txnRepo      *persistencemocks.MockTransactionRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

func newWalletService() (*Service, *walletMocks) {
	m := &walletMocks{
		txnRepo:      new(persistencemocks.MockTransactionRepository),
		timeProvider: new(coremocks.MockTimeProvider),
		logger:       new(coremocks.MockLogger),
	}
	m.timeProvider.On("Now").Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	svc := NewService(m.txnRepo, m.timeProvider, m.logger, testParams)
	return svc, m
}

func TestSubmitDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates pending deposit at the minimum", func(t *testing.T) {
		svc, m := newWalletService()

		m.txnRepo.On("CreateDeposit", ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeDeposit &&
				txn.Status == entity.StatusPending &&
				txn.AmountInCents == 1000000
		})).Return(nil)
		m.logger.On("Info", "Deposit submitted", mock.Anything).Return()

		txn, err := svc.SubmitDeposit(ctx, "user-1", 1000000, "https://cdn.example.com/proof.jpg")

		require.NoError(t, err)
		assert.True(t, txn.IsPending())
		assert.Equal(t, "10000.00", txn.FormattedAmount())
		m.txnRepo.AssertExpectations(t)
	})

	t.Run("Amount below the minimum", func(t *testing.T) {
		svc, m := newWalletService()

		_, err := svc.SubmitDeposit(ctx, "user-1", 999999, "https://cdn.example.com/proof.jpg")

		assert.ErrorIs(t, err, errs.ErrAmountBelowMinimum)
		m.txnRepo.AssertNotCalled(t, "CreateDeposit", mock.Anything, mock.Anything)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		svc, _ := newWalletService()

		_, err := svc.SubmitDeposit(ctx, "", 1000000, "https://cdn.example.com/proof.jpg")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestSubmitWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates pending withdrawal", func(t *testing.T) {
		svc, m := newWalletService()

		m.txnRepo.On("CreateWithdrawal", ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeWithdraw &&
				txn.Status == entity.StatusPending &&
				txn.DestinationAccount == "BCA 1234567890"
		})).Return(nil)
		m.logger.On("Info", "Withdrawal submitted, balance debited", mock.Anything).Return()

		txn, err := svc.SubmitWithdraw(ctx, "user-1", 1000000, "BCA 1234567890")

		require.NoError(t, err)
		assert.True(t, txn.IsPending())
		m.txnRepo.AssertExpectations(t)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		svc, m := newWalletService()
		repoErr := errs.NewInsufficientBalanceError("user-1", "10000.00", "500.00")

		m.txnRepo.On("CreateWithdrawal", ctx, mock.Anything).Return(repoErr)
		m.logger.On("Warn", "Withdrawal rejected: insufficient balance", mock.Anything).Return()

		_, err := svc.SubmitWithdraw(ctx, "user-1", 1000000, "BCA 1234567890")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		m.logger.AssertExpectations(t)
	})

	t.Run("Amount below the minimum", func(t *testing.T) {
		svc, m := newWalletService()

		_, err := svc.SubmitWithdraw(ctx, "user-1", 999999, "BCA 1234567890")

		assert.ErrorIs(t, err, errs.ErrAmountBelowMinimum)
		m.txnRepo.AssertNotCalled(t, "CreateWithdrawal", mock.Anything, mock.Anything)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the user's transactions", func(t *testing.T) {
		svc, m := newWalletService()
		txns := []*entity.Transaction{
			{ID: 2, UserID: "user-1", Type: entity.TypeWithdraw},
			{ID: 1, UserID: "user-1", Type: entity.TypeDeposit},
		}

		m.txnRepo.On("ListByUser", ctx, "user-1").Return(txns, nil)

		got, err := svc.History(ctx, "user-1")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		svc, _ := newWalletService()

		_, err := svc.History(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid status filters", func(t *testing.T) {
		for _, status := range []string{"", "pending", "approved", "rejected"} {
			svc, m := newWalletService()
			m.txnRepo.On("List", ctx, entity.TransactionStatus(status)).Return([]*entity.Transaction{}, nil)

			_, err := svc.ListTransactions(ctx, status)
			assert.NoError(t, err, "status %q", status)
		}
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		svc, m := newWalletService()

		_, err := svc.ListTransactions(ctx, "settled")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		m.txnRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("Approves a pending transaction", func(t *testing.T) {
		svc, m := newWalletService()
		settled := &entity.Transaction{
			ID:            7,
			UserID:        "user-1",
			Type:          entity.TypeDeposit,
			AmountInCents: 1000000,
			Status:        entity.StatusApproved,
		}

		m.txnRepo.On("Settle", ctx, uint64(7), entity.StatusApproved, "looks good").Return(settled, nil)
		m.logger.On("Info", "Transaction settled", mock.Anything).Return()

		txn, err := svc.Settle(ctx, 7, "approved", "looks good")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, txn.Status)
		m.txnRepo.AssertExpectations(t)
	})

	t.Run("Invalid decision", func(t *testing.T) {
		svc, m := newWalletService()

		_, err := svc.Settle(ctx, 7, "pending", "")

		assert.ErrorIs(t, err, errs.ErrInvalidDecision)
		m.txnRepo.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already processed", func(t *testing.T) {
		svc, m := newWalletService()

		m.txnRepo.On("Settle", ctx, uint64(7), entity.StatusRejected, "").Return(nil, errs.ErrAlreadyProcessed)

		_, err := svc.Settle(ctx, 7, "rejected", "")
		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		svc, m := newWalletService()

		m.txnRepo.On("Settle", ctx, uint64(404), entity.StatusApproved, "").Return(nil, errs.ErrTransactionNotFound)

		_, err := svc.Settle(ctx, 404, "approved", "")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}
