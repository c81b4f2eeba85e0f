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

// IdentityRepository implements persistence.IdentityRepository using GORM.
// Identity and session rows are written by the external auth provider;
// this repository only reads them.
type IdentityRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewIdentityRepository creates a new IdentityRepository instance
func NewIdentityRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *IdentityRepository {
	return &IdentityRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *IdentityRepository) modelToEntity(identityModel *model.Identity) *entity.Identity {
	return &entity.Identity{
		ID:              identityModel.ID,
		Email:           identityModel.Email,
		FirstName:       identityModel.FirstName,
		LastName:        identityModel.LastName,
		ProfileImageURL: identityModel.ProfileImageURL,
		CreatedAt:       identityModel.CreatedAt,
	}
}

// GetByID retrieves an identity by user ID
func (r *IdentityRepository) GetByID(ctx context.Context, userID string) (*entity.Identity, error) {
	var identityModel model.Identity
	result := r.db.WithContext(ctx).Where("id = ?", userID).First(&identityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&identityModel), nil
}

// GetSession retrieves a session by its cookie token. Unknown and expired
// tokens both surface as ErrUnauthenticated.
func (r *IdentityRepository) GetSession(ctx context.Context, token string) (*entity.Session, error) {
	var sessionModel model.Session
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	session := &entity.Session{
		Token:     sessionModel.Token,
		UserID:    sessionModel.UserID,
		ExpiresAt: sessionModel.ExpiresAt,
		CreatedAt: sessionModel.CreatedAt,
	}
	if session.IsExpired(r.timeProvider.Now()) {
		return nil, errs.ErrUnauthenticated
	}
	return session, nil
}

// accountRow is the join projection for ListAccounts
type accountRow struct {
	model.Profile
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// ListAccounts returns every identity joined with its profile
func (r *IdentityRepository) ListAccounts(ctx context.Context) ([]*entity.UserAccount, error) {
	var rows []accountRow
	result := r.db.WithContext(ctx).
		Table("profiles").
		Select("profiles.*, identities.email, identities.first_name, identities.last_name, identities.profile_image_url").
		Joins("JOIN identities ON identities.id = profiles.user_id").
		Order("profiles.created_at ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	accounts := make([]*entity.UserAccount, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		profile := entity.Profile{
			ID:                row.Profile.ID,
			UserID:            row.Profile.UserID,
			IsAdmin:           row.Profile.IsAdmin,
			IsFrozen:          row.Profile.IsFrozen,
			WinRate:           row.Profile.WinRate,
			PhoneNumber:       row.Profile.PhoneNumber,
			BankName:          row.Profile.BankName,
			BankAccountNumber: row.Profile.BankAccountNumber,
			BankAccountName:   row.Profile.BankAccountName,
			CreatedAt:         row.Profile.CreatedAt,
			UpdatedAt:         row.Profile.UpdatedAt,
		}
		profile.SetBalance(row.Profile.Balance, r.timeProvider)
		profile.UpdatedAt = row.Profile.UpdatedAt

		accounts = append(accounts, &entity.UserAccount{
			Identity: entity.Identity{
				ID:              row.Profile.UserID,
				Email:           row.Email,
				FirstName:       row.FirstName,
				LastName:        row.LastName,
				ProfileImageURL: row.ProfileImageURL,
			},
			Profile: profile,
		})
	}
	return accounts, nil
}
