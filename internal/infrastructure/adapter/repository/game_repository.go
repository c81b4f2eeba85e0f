package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// GameRepository implements persistence.GameRepository using GORM
type GameRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewGameRepository creates a new GameRepository instance
func NewGameRepository(db *gorm.DB, logger coreport.Logger) *GameRepository {
	return &GameRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GameRepository) modelToEntity(gameModel *model.Game) *entity.Game {
	return &entity.Game{
		ID:        gameModel.ID,
		Title:     gameModel.Title,
		Provider:  gameModel.Provider,
		ImageURL:  gameModel.ImageURL,
		PlayURL:   gameModel.PlayURL,
		Slug:      gameModel.Slug,
		Category:  gameModel.Category,
		IsActive:  gameModel.IsActive,
		CreatedAt: gameModel.CreatedAt,
	}
}

// ListActive returns all active catalog entries
func (r *GameRepository) ListActive(ctx context.Context) ([]*entity.Game, error) {
	var gameModels []model.Game
	result := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&gameModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for i := range gameModels {
		games = append(games, r.modelToEntity(&gameModels[i]))
	}
	return games, nil
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(ctx context.Context, id uint64) (*entity.Game, error) {
	var gameModel model.Game
	result := r.db.WithContext(ctx).First(&gameModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrGameNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&gameModel), nil
}

// Count returns the number of catalog entries
func (r *GameRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Game{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}

// CreateGame inserts a catalog entry
func (r *GameRepository) CreateGame(ctx context.Context, game *entity.Game) error {
	gameModel := model.Game{
		Title:     game.Title,
		Provider:  game.Provider,
		ImageURL:  game.ImageURL,
		PlayURL:   game.PlayURL,
		Slug:      game.Slug,
		Category:  game.Category,
		IsActive:  game.IsActive,
		CreatedAt: game.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&gameModel)
	if result.Error != nil {
		r.logger.Error("Failed to create game", map[string]any{
			"slug":  game.Slug,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	game.ID = gameModel.ID
	return nil
}

// CreateSession appends a play-launch record
func (r *GameRepository) CreateSession(ctx context.Context, session *entity.GameSession) error {
	sessionModel := model.GameSession{
		UserID:          session.UserID,
		GameID:          session.GameID,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		TotalBetInCents: session.TotalBetInCents,
		TotalWinInCents: session.TotalWinInCents,
	}

	result := r.db.WithContext(ctx).Create(&sessionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create game session", map[string]any{
			"user_id": session.UserID,
			"game_id": session.GameID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	session.ID = sessionModel.ID
	return nil
}
