package persistence

import (
	"context"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// IdentityRepository reads the identity and session records written by the
// external auth provider. The portal never writes to these tables.
type IdentityRepository interface {
	// GetByID retrieves an identity by user ID
	//
	// Possible errors:
	// - ErrUserNotFound: unknown identity
	// - ErrDatabaseConnection: database failure
	GetByID(ctx context.Context, userID string) (*entity.Identity, error)

	// GetSession retrieves a session by its opaque cookie token
	//
	// Possible errors:
	// - ErrUnauthenticated: unknown token
	// - ErrDatabaseConnection: database failure
	GetSession(ctx context.Context, token string) (*entity.Session, error)

	// ListAccounts returns every identity joined with its profile,
	// for the admin user list. Identities without a profile are skipped.
	ListAccounts(ctx context.Context) ([]*entity.UserAccount, error)
}
