package persistence

import (
	"context"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// ProfileUpdate carries a partial administrative update of a profile.
// Nil fields are left untouched. BalanceInCents replaces the balance
// outright rather than adjusting it.
type ProfileUpdate struct {
	IsFrozen       *bool
	IsAdmin        *bool
	WinRate        *int
	BalanceInCents *int64
}

// BankDetails carries the user-editable payout fields of a profile
type BankDetails struct {
	BankName          string
	BankAccountNumber string
	BankAccountName   string
}

// ProfileRepository defines the persistence operations for profiles
type ProfileRepository interface {
	// GetByUserID retrieves a profile by its identity user ID
	//
	// Possible errors:
	// - ErrUserNotFound: no profile for this user
	// - ErrDatabaseConnection: database failure
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)

	// Create persists a new profile
	//
	// Possible errors:
	// - ErrDuplicateProfile: a profile already exists for this user
	// - ErrDatabaseConnection: database failure
	Create(ctx context.Context, profile *entity.Profile) error

	// Count returns the total number of profiles. Used by the
	// first-registered-user admin bootstrap.
	Count(ctx context.Context) (int64, error)

	// UpdateBankDetails overwrites the user-editable bank fields
	//
	// Possible errors:
	// - ErrUserNotFound: no profile for this user
	// - ErrDatabaseConnection: database failure
	UpdateBankDetails(ctx context.Context, userID string, details BankDetails) error

	// ApplyAdminUpdate applies a partial administrative update and returns
	// the updated profile. A supplied balance replaces the stored value.
	//
	// Possible errors:
	// - ErrUserNotFound: no profile for this user
	// - ErrDatabaseConnection: database failure
	ApplyAdminUpdate(ctx context.Context, userID string, update ProfileUpdate) (*entity.Profile, error)

	// SetAdmin flips the admin flag without touching anything else
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error
}
