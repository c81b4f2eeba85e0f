package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// MockTransactionRepository is a testify mock for the TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

// CreateDeposit mocks persisting a pending deposit
func (m *MockTransactionRepository) CreateDeposit(ctx context.Context, txn *entity.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// CreateWithdrawal mocks the atomic debit-and-insert of a withdrawal
func (m *MockTransactionRepository) CreateWithdrawal(ctx context.Context, txn *entity.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// ListByUser mocks listing a user's transactions
func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// List mocks listing all transactions with an optional status filter
func (m *MockTransactionRepository) List(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// Settle mocks the atomic settlement of a pending transaction
func (m *MockTransactionRepository) Settle(ctx context.Context, id uint64, decision entity.TransactionStatus, adminNote string) (*entity.Transaction, error) {
	args := m.Called(ctx, id, decision, adminNote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}
