package persistence

import (
	"context"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// GameRepository defines the persistence operations for the game catalog
// and the append-only session log.
type GameRepository interface {
	// ListActive returns all active catalog entries
	ListActive(ctx context.Context) ([]*entity.Game, error)

	// GetByID retrieves a game by ID
	//
	// Possible errors:
	// - ErrGameNotFound: unknown game
	// - ErrDatabaseConnection: database failure
	GetByID(ctx context.Context, id uint64) (*entity.Game, error)

	// Count returns the number of catalog entries. Used to skip seeding.
	Count(ctx context.Context) (int64, error)

	// CreateGame inserts a catalog entry (seeding only)
	CreateGame(ctx context.Context, game *entity.Game) error

	// CreateSession appends a play-launch record. Write path only; nothing
	// reads sessions back.
	CreateSession(ctx context.Context, session *entity.GameSession) error
}
