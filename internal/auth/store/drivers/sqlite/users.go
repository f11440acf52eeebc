package sqlite

import (
	"context"
	"time"

	"github.com/aayush-1o/freightflow/internal/auth/domain"
	"github.com/aayush-1o/freightflow/internal/auth/store"
)

const userColumns = `id, name, email, phone, password_hash, role,
reset_token_hash, reset_token_expires_at, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByResetToken(
	ctx context.Context,
	tokenHash string,
	now time.Time,
) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		WHERE reset_token_hash = ? AND reset_token_expires_at > ?`,
		tokenHash, now.UTC())

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, phone, password_hash, role)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, mapStringNull(u.Phone), u.PasswordHash, u.Role)
	return mapConflict(err)
}

func (r *usersRepo) SetResetToken(
	ctx context.Context,
	userID, tokenHash string,
	expiresAt time.Time,
) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		SET reset_token_hash = ?, reset_token_expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		tokenHash, expiresAt.UTC(), userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ConsumeResetToken(
	ctx context.Context,
	tokenHash, newPasswordHash string,
	now time.Time,
) error {
	// Single conditional update: of two racing resets at most one observes
	// the token and clears it, the other sees zero rows affected.
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		SET password_hash = ?,
			reset_token_hash = NULL,
			reset_token_expires_at = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE reset_token_hash = ? AND reset_token_expires_at > ?`,
		newPasswordHash, tokenHash, now.UTC())
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ClearExpiredResetTokens(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		SET reset_token_hash = NULL,
			reset_token_expires_at = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE reset_token_expires_at IS NOT NULL AND reset_token_expires_at <= ?`,
		now.UTC())
	return err
}
