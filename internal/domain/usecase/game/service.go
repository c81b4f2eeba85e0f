package game

import (
	"context"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
)

// AccessGate decides whether a user may launch a game.
// Implemented by the ledger service.
type AccessGate interface {
	IsEligibleToPlay(ctx context.Context, userID string) error
}

// Service implements the game catalog and the access gate in front of
// play-launch. Gameplay itself happens on the provider's side; the portal
// only hands out launch URLs and logs the session.
type Service struct {
	gameRepo     persistence.GameRepository
	gate         AccessGate
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new game service
func NewService(
	gameRepo persistence.GameRepository,
	gate AccessGate,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		gameRepo:     gameRepo,
		gate:         gate,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListGames returns the active game catalog
func (s *Service) ListGames(ctx context.Context) ([]*entity.Game, error) {
	return s.gameRepo.ListActive(ctx)
}

// RequestPlay checks the access gate, logs a session row and returns the
// game's launch URL. Frozen accounts and balances below the minimum fail the
// gate; unknown or inactive games fail with ErrGameNotFound.
func (s *Service) RequestPlay(ctx context.Context, userID string, gameID uint64) (string, error) {
	if err := s.gate.IsEligibleToPlay(ctx, userID); err != nil {
		return "", err
	}

	g, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return "", err
	}
	if !g.IsActive {
		return "", errs.ErrGameNotFound
	}

	session := &entity.GameSession{
		UserID:    userID,
		GameID:    g.ID,
		StartTime: s.timeProvider.Now(),
	}
	if err := s.gameRepo.CreateSession(ctx, session); err != nil {
		return "", err
	}

	s.logger.Info("Game session started", map[string]any{
		"user_id": userID,
		"game_id": g.ID,
		"slug":    g.Slug,
	})
	return g.PlayURL, nil
}
