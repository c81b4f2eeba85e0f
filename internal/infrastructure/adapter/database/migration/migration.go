package migration

import (
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager runs schema migrations at startup
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll brings the schema up to date for every portal table.
// The identities and sessions tables belong to the external auth provider;
// they are migrated here too so a fresh local database works out of the box.
func (m *Manager) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	err := m.db.AutoMigrate(
		&model.Identity{},
		&model.Session{},
		&model.Profile{},
		&model.Transaction{},
		&model.Game{},
		&model.GameSession{},
	)
	if err != nil {
		m.logger.Error("Migration failed", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
