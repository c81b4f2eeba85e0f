package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// MockIdentityRepository is a testify mock for the IdentityRepository port
type MockIdentityRepository struct {
	mock.Mock
}

// GetByID mocks retrieving an identity by user ID
func (m *MockIdentityRepository) GetByID(ctx context.Context, userID string) (*entity.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Identity), args.Error(1)
}

// GetSession mocks retrieving a session by token
func (m *MockIdentityRepository) GetSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

// ListAccounts mocks listing every identity joined with its profile
func (m *MockIdentityRepository) ListAccounts(ctx context.Context) ([]*entity.UserAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserAccount), args.Error(1)
}
