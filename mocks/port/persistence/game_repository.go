package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// MockGameRepository is a testify mock for the GameRepository port
type MockGameRepository struct {
	mock.Mock
}

// ListActive mocks listing active catalog entries
func (m *MockGameRepository) ListActive(ctx context.Context) ([]*entity.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Game), args.Error(1)
}

// GetByID mocks retrieving a game by ID
func (m *MockGameRepository) GetByID(ctx context.Context, id uint64) (*entity.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Game), args.Error(1)
}

// Count mocks counting catalog entries
func (m *MockGameRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// CreateGame mocks inserting a catalog entry
func (m *MockGameRepository) CreateGame(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

// CreateSession mocks appending a play-launch record
func (m *MockGameRepository) CreateSession(ctx context.Context, session *entity.GameSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
