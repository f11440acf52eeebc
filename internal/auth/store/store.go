package store

import (
	"context"
	"errors"
	"time"

	"github.com/aayush-1o/freightflow/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic
	// (e.g., the exists-check + insert during registration).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and registration checks.
	// Emails are matched case-sensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByResetToken returns the user whose pending reset token
	// fingerprint matches tokenHash and is unexpired at now. Unknown and
	// expired tokens are indistinguishable: both yield ErrNotFound.
	GetUserByResetToken(ctx context.Context, tokenHash string, now time.Time) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// SetResetToken attaches a reset token fingerprint and expiry to the
	// user, overwriting any previously pending token (last writer wins).
	SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// ConsumeResetToken atomically sets a new password hash and clears the
	// token fields for the user whose token fingerprint matches and is
	// unexpired at now. Returns ErrNotFound when no row qualifies, which
	// covers consumed, expired, overwritten and never-issued tokens; under
	// racing resets at most one caller succeeds.
	ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) error

	// ClearExpiredResetTokens drops token fields whose expiry has passed.
	// Housekeeping only; expired tokens are already unusable.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) error
}
