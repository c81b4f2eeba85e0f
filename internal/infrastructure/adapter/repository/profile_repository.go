package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository implements persistence.ProfileRepository using GORM
type ProfileRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a profile model to an entity
func (r *ProfileRepository) modelToEntity(profileModel *model.Profile) *entity.Profile {
	profile := &entity.Profile{
		ID:                profileModel.ID,
		UserID:            profileModel.UserID,
		IsAdmin:           profileModel.IsAdmin,
		IsFrozen:          profileModel.IsFrozen,
		WinRate:           profileModel.WinRate,
		PhoneNumber:       profileModel.PhoneNumber,
		BankName:          profileModel.BankName,
		BankAccountNumber: profileModel.BankAccountNumber,
		BankAccountName:   profileModel.BankAccountName,
		CreatedAt:         profileModel.CreatedAt,
		UpdatedAt:         profileModel.UpdatedAt,
	}
	profile.SetBalance(profileModel.Balance, r.timeProvider)
	profile.UpdatedAt = profileModel.UpdatedAt
	return profile
}

// handleDatabaseError standardizes database error handling
func (r *ProfileRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Profile not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate profile operation", map[string]any{
			"user_id": userID,
		})
		return errs.ErrDuplicateProfile
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByUserID retrieves a profile by its identity user ID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var profileModel model.Profile
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting profile", result.Error, userID)
	}

	return r.modelToEntity(&profileModel), nil
}

// Create persists a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileModel := model.Profile{
		UserID:            profile.UserID,
		Balance:           profile.Balance(),
		IsAdmin:           profile.IsAdmin,
		IsFrozen:          profile.IsFrozen,
		WinRate:           profile.WinRate,
		PhoneNumber:       profile.PhoneNumber,
		BankName:          profile.BankName,
		BankAccountNumber: profile.BankAccountNumber,
		BankAccountName:   profile.BankAccountName,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&profileModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating profile", result.Error, profile.UserID)
	}

	profile.ID = profileModel.ID

	r.logger.Info("Profile created", map[string]any{
		"user_id": profile.UserID,
		"balance": profile.FormattedBalance(),
	})
	return nil
}

// Count returns the total number of profiles
func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Profile{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}

// UpdateBankDetails overwrites the user-editable bank fields
func (r *ProfileRepository) UpdateBankDetails(ctx context.Context, userID string, details persistence.BankDetails) error {
	result := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"bank_name":           details.BankName,
			"bank_account_number": details.BankAccountNumber,
			"bank_account_name":   details.BankAccountName,
			"updated_at":          r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating bank details", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// ApplyAdminUpdate applies a partial administrative update inside a database
// transaction with the profile row locked, so a balance override cannot race
// a concurrent settlement.
func (r *ProfileRepository) ApplyAdminUpdate(ctx context.Context, userID string, update persistence.ProfileUpdate) (*entity.Profile, error) {
	var profileModel model.Profile

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&profileModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		updates := map[string]interface{}{
			"updated_at": r.timeProvider.Now(),
		}
		if update.IsFrozen != nil {
			updates["is_frozen"] = *update.IsFrozen
			profileModel.IsFrozen = *update.IsFrozen
		}
		if update.IsAdmin != nil {
			updates["is_admin"] = *update.IsAdmin
			profileModel.IsAdmin = *update.IsAdmin
		}
		if update.WinRate != nil {
			updates["win_rate"] = *update.WinRate
			profileModel.WinRate = *update.WinRate
		}
		if update.BalanceInCents != nil {
			updates["balance"] = *update.BalanceInCents
			profileModel.Balance = *update.BalanceInCents
		}

		result = tx.Model(&model.Profile{}).Where("user_id = ?", userID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, err
		}
		return nil, r.handleDatabaseError("applying admin update", err, userID)
	}

	return r.modelToEntity(&profileModel), nil
}

// SetAdmin flips the admin flag
func (r *ProfileRepository) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	result := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"is_admin":   isAdmin,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("setting admin flag", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
