package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aayush-1o/freightflow/internal/auth/domain"
	"github.com/aayush-1o/freightflow/internal/auth/store"
	"github.com/aayush-1o/freightflow/pkg/cryptox"
	"github.com/aayush-1o/freightflow/pkg/idx"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserService struct {
	Store store.Store
}

// Register creates a new user account. Name, email and password are required;
// phone and role are stored as given without validation. The plaintext
// password is hashed before anything touches the store and is never returned.
func (s *UserService) Register(
	ctx context.Context,
	name, email, phone, password, role string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Presence checks only; anything further is the caller's problem.
	if name == "" || email == "" || password == "" {
		log.Warn("registration missing required fields")
		return domain.User{}, ErrMissingFields
	}

	// 2. Hash outside the transaction; argon2 is deliberately slow.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	newUser := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
	}

	// 3. Check-then-insert inside one transaction. The unique email index
	// remains the backstop for concurrent registrations.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByEmail(ctx, email)
		if err == nil {
			return ErrUserExists
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		return tx.Users().CreateUser(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) || errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with existing email")
			return domain.User{}, ErrUserExists
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", newUser.ID),
		slog.String("role", newUser.Role),
	)

	return newUser, nil
}

// Login verifies credentials and returns the matching user. No session or
// token is issued; the caller only learns whether the identity checks out.
// A malformed stored hash verifies as a wrong password rather than an error.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted for unknown email")
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login failed password verification",
			slog.String("user_id", user.ID),
		)
		return domain.User{}, ErrInvalidPassword
	}

	log.Debug("login successful", slog.String("user_id", user.ID))
	return user, nil
}
