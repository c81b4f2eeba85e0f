package game

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

type mockAccessGate struct {
	mock.Mock
}

func (m *mockAccessGate) IsEligibleToPlay(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type gameMocks struct {
	gameRepo *persistencemocks.MockGameRepository
	gate     *mockAccessGate
	logger   *coremocks.MockLogger
}

func newGameService() (*Service, *gameMocks) {
	m := &gameMocks{
		gameRepo: new(persistencemocks.MockGameRepository),
		gate:     new(mockAccessGate),
		logger:   new(coremocks.MockLogger),
	}
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	svc := NewService(m.gameRepo, m.gate, tp, m.logger)
	return svc, m
}

func activeGame() *entity.Game {
	return &entity.Game{
		ID:       1,
		Title:    "Mahjong Ways 2",
		Provider: "PGSoft",
		PlayURL:  "https://play.example.com/mahjong-ways-2",
		Slug:     "mahjong-ways-2",
		IsActive: true,
	}
}

func TestListGames(t *testing.T) {
	ctx := context.Background()

	svc, m := newGameService()
	m.gameRepo.On("ListActive", ctx).Return([]*entity.Game{activeGame()}, nil)

	games, err := svc.ListGames(ctx)

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Mahjong Ways 2", games[0].Title)
}

func TestRequestPlay(t *testing.T) {
	ctx := context.Background()

	t.Run("Eligible user receives the launch URL", func(t *testing.T) {
		svc, m := newGameService()

		m.gate.On("IsEligibleToPlay", ctx, "user-1").Return(nil)
		m.gameRepo.On("GetByID", ctx, uint64(1)).Return(activeGame(), nil)
		m.gameRepo.On("CreateSession", ctx, mock.MatchedBy(func(s *entity.GameSession) bool {
			return s.UserID == "user-1" && s.GameID == 1
		})).Return(nil)
		m.logger.On("Info", "Game session started", mock.Anything).Return()

		url, err := svc.RequestPlay(ctx, "user-1", 1)

		require.NoError(t, err)
		assert.Equal(t, "https://play.example.com/mahjong-ways-2", url)
		m.gameRepo.AssertExpectations(t)
	})

	t.Run("Frozen account fails the gate", func(t *testing.T) {
		svc, m := newGameService()

		m.gate.On("IsEligibleToPlay", ctx, "user-1").Return(errs.ErrAccountFrozen)

		_, err := svc.RequestPlay(ctx, "user-1", 1)

		assert.ErrorIs(t, err, errs.ErrAccountFrozen)
		m.gameRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Low balance fails the gate", func(t *testing.T) {
		svc, m := newGameService()

		m.gate.On("IsEligibleToPlay", ctx, "user-1").Return(errs.ErrBalanceTooLow)

		_, err := svc.RequestPlay(ctx, "user-1", 1)
		assert.ErrorIs(t, err, errs.ErrBalanceTooLow)
	})

	t.Run("Unknown game", func(t *testing.T) {
		svc, m := newGameService()

		m.gate.On("IsEligibleToPlay", ctx, "user-1").Return(nil)
		m.gameRepo.On("GetByID", ctx, uint64(404)).Return(nil, errs.ErrGameNotFound)

		_, err := svc.RequestPlay(ctx, "user-1", 404)
		assert.ErrorIs(t, err, errs.ErrGameNotFound)
	})

	t.Run("Inactive game is treated as unknown", func(t *testing.T) {
		svc, m := newGameService()
		retired := activeGame()
		retired.IsActive = false

		m.gate.On("IsEligibleToPlay", ctx, "user-1").Return(nil)
		m.gameRepo.On("GetByID", ctx, uint64(1)).Return(retired, nil)

		_, err := svc.RequestPlay(ctx, "user-1", 1)

		assert.ErrorIs(t, err, errs.ErrGameNotFound)
		m.gameRepo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})
}
