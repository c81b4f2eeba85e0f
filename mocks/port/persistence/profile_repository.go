package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
)

// MockProfileRepository is a testify mock for the ProfileRepository port
type MockProfileRepository struct {
	mock.Mock
}

// GetByUserID mocks retrieving a profile by user ID
func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

// Create mocks persisting a new profile
func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Count mocks counting profiles
func (m *MockProfileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// UpdateBankDetails mocks overwriting the bank fields
func (m *MockProfileRepository) UpdateBankDetails(ctx context.Context, userID string, details persistence.BankDetails) error {
	args := m.Called(ctx, userID, details)
	return args.Error(0)
}

// ApplyAdminUpdate mocks applying a partial administrative update
func (m *MockProfileRepository) ApplyAdminUpdate(ctx context.Context, userID string, update persistence.ProfileUpdate) (*entity.Profile, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

// SetAdmin mocks flipping the admin flag
func (m *MockProfileRepository) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	args := m.Called(ctx, userID, isAdmin)
	return args.Error(0)
}
