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
	"gorm.io/gorm/clause"
)

// TransactionRepository implements persistence.TransactionRepository using GORM.
// Balance-touching operations lock the profile row with FOR UPDATE inside a
// database transaction, so concurrent withdrawals and settlements serialize
// on the same balance instead of losing updates.
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                 txn.ID,
		UserID:             txn.UserID,
		Type:               string(txn.Type),
		AmountInCents:      txn.AmountInCents,
		Status:             string(txn.Status),
		ProofImageURL:      txn.ProofImageURL,
		DestinationAccount: txn.DestinationAccount,
		AdminNote:          txn.AdminNote,
		CreatedAt:          txn.CreatedAt,
		ProcessedAt:        txn.ProcessedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                 txnModel.ID,
		UserID:             txnModel.UserID,
		Type:               entity.TransactionType(txnModel.Type),
		AmountInCents:      txnModel.AmountInCents,
		Status:             entity.TransactionStatus(txnModel.Status),
		ProofImageURL:      txnModel.ProofImageURL,
		DestinationAccount: txnModel.DestinationAccount,
		AdminNote:          txnModel.AdminNote,
		CreatedAt:          txnModel.CreatedAt,
		ProcessedAt:        txnModel.ProcessedAt,
	}
}

// CreateDeposit persists a pending deposit with no balance effect
func (r *TransactionRepository) CreateDeposit(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		r.logger.Error("Failed to create deposit", map[string]any{
			"user_id": txn.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = txnModel.ID
	return nil
}

// CreateWithdrawal atomically debits the owner's balance and inserts the
// pending withdrawal. The profile row is locked for the duration, and the
// debit is refused when the locked balance does not cover the amount.
func (r *TransactionRepository) CreateWithdrawal(ctx context.Context, txn *entity.Transaction) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profileModel model.Profile
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", txn.UserID).First(&profileModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		if profileModel.Balance < txn.AmountInCents {
			return errs.NewInsufficientBalanceError(
				txn.UserID,
				entity.AmountInCentsToString(txn.AmountInCents),
				entity.AmountInCentsToString(profileModel.Balance),
			)
		}

		result = tx.Model(&model.Profile{}).
			Where("user_id = ?", txn.UserID).
			Updates(map[string]interface{}{
				"balance":    profileModel.Balance - txn.AmountInCents,
				"updated_at": r.timeProvider.Now(),
			})
		if result.Error != nil {
			return result.Error
		}

		txnModel := r.entityToModel(txn)
		if err := tx.Create(&txnModel).Error; err != nil {
			return err
		}
		txn.ID = txnModel.ID
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errs.IsInsufficientBalanceError(err) {
			return err
		}
		r.logger.Error("Failed to create withdrawal", map[string]any{
			"user_id":         txn.UserID,
			"error":           err.Error(),
			"transient":       r.errorClassifier.IsTransientError(err),
			"lock_contention": r.errorClassifier.IsLockError(err),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return nil
}

// ListByUser returns a user's own transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txnModels)

	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(txnModels), nil
}

// List returns all transactions, newest first, optionally filtered by status
func (r *TransactionRepository) List(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var txnModels []model.Transaction
	if err := query.Find(&txnModels).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return r.modelsToEntities(txnModels), nil
}

func (r *TransactionRepository) modelsToEntities(txnModels []model.Transaction) []*entity.Transaction {
	txns := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, r.modelToEntity(&txnModels[i]))
	}
	return txns
}

// Settle transitions a pending transaction to the given terminal status and
// applies its balance effect in one database transaction. The transaction row
// is locked first so a second settlement attempt observes the new status and
// fails with ErrAlreadyProcessed.
func (r *TransactionRepository) Settle(ctx context.Context, id uint64, decision entity.TransactionStatus, adminNote string) (*entity.Transaction, error) {
	var settled *entity.Transaction
	var locked *entity.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txnModel model.Transaction
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txnModel, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrTransactionNotFound
			}
			return result.Error
		}

		txn := r.modelToEntity(&txnModel)
		locked = txn
		if err := txn.Settle(decision, adminNote, r.timeProvider); err != nil {
			return err
		}

		if credit := txn.BalanceEffect(decision); credit != 0 {
			var profileModel model.Profile
			result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ?", txn.UserID).First(&profileModel)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return errs.ErrUserNotFound
				}
				return result.Error
			}

			result = tx.Model(&model.Profile{}).
				Where("user_id = ?", txn.UserID).
				Updates(map[string]interface{}{
					"balance":    profileModel.Balance + credit,
					"updated_at": r.timeProvider.Now(),
				})
			if result.Error != nil {
				return result.Error
			}
		}

		result = tx.Model(&model.Transaction{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":       string(txn.Status),
				"admin_note":   txn.AdminNote,
				"processed_at": txn.ProcessedAt,
			})
		if result.Error != nil {
			return result.Error
		}

		settled = txn
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) ||
			errors.Is(err, errs.ErrAlreadyProcessed) ||
			errors.Is(err, errs.ErrUserNotFound) {
			return nil, err
		}

		userID, txType := "", ""
		if locked != nil {
			userID, txType = locked.UserID, string(locked.Type)
		}
		reason := "database failure"
		switch {
		case r.errorClassifier.IsLockError(err):
			reason = "lock contention"
		case r.errorClassifier.IsTransientError(err):
			reason = "transient database failure"
		}

		settleErr := errs.NewSettlementError(id, userID, txType, string(decision), reason,
			fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error()))
		r.logger.Error("Failed to settle transaction", settleErr.LogFields())
		return nil, settleErr
	}

	return settled, nil
}
