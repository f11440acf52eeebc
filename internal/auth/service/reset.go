package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/aayush-1o/freightflow/internal/auth/mail"
	"github.com/aayush-1o/freightflow/internal/auth/store"
	"github.com/aayush-1o/freightflow/pkg/cryptox"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

var (
	// ErrInvalidResetToken covers never-issued, expired, overwritten and
	// already-consumed tokens alike. Callers must not be able to tell these
	// apart; that indistinguishability is a security property.
	ErrInvalidResetToken = errors.New("reset token invalid or expired")

	// ErrNotificationFailed reports that the reset link could not be
	// delivered. The token has already been written by then, so a retry
	// issues a fresh link and silently invalidates this one.
	ErrNotificationFailed = errors.New("failed to deliver reset notification")
)

// DefaultResetTokenTTL is the validity window applied when TokenTTL is zero.
const DefaultResetTokenTTL = 10 * time.Minute

// PasswordResetService owns the reset-token lifecycle: issue on
// forgot-password, idempotent verification, single-use consumption on reset.
// Tokens are stored as SHA-256 fingerprints only.
type PasswordResetService struct {
	Store    store.Store
	Mailer   mail.Sender
	ResetURL string        // link base, token appended as ?token=...
	TokenTTL time.Duration // zero means DefaultResetTokenTTL
}

func (s *PasswordResetService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return DefaultResetTokenTTL
}

// ForgotPassword issues a fresh reset token for the account with the given
// email, overwriting any previously pending token, and mails the reset link.
func (s *PasswordResetService) ForgotPassword(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	// 1. Resolve the account.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset requested for unknown email")
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 2. Generate the opaque token. 256 bits of entropy, so no uniqueness
	// check against the store is needed.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return err
	}
	expiresAt := time.Now().UTC().Add(s.ttl())

	// 3. Store the fingerprint, never the raw token. Overwriting a pending
	// token is intentional: the newest link is the only valid one.
	fingerprint := cryptox.FingerprintToken(token)
	if err := s.Store.Users().SetResetToken(ctx, user.ID, fingerprint, expiresAt); err != nil {
		log.Error("failed to attach reset token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	// 4. Deliver the link. The raw token leaves the process only here.
	link := s.buildResetLink(token)
	if err := s.Mailer.SendPasswordReset(ctx, user.Email, link, expiresAt); err != nil {
		log.Error("failed to send reset link",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	log.Info("password reset link issued",
		slog.String("user_id", user.ID),
		slog.Time("expires_at", expiresAt),
	)

	return nil
}

// VerifyToken reports whether a reset token is currently valid. Idempotent;
// the token is not consumed and no state changes.
func (s *PasswordResetService) VerifyToken(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)

	if token == "" {
		return ErrInvalidResetToken
	}

	fingerprint := cryptox.FingerprintToken(token)
	_, err := s.Store.Users().GetUserByResetToken(ctx, fingerprint, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("verification attempted with invalid or expired reset token")
			return ErrInvalidResetToken
		}
		log.Error("failed to look up reset token", slog.Any("error", err))
		return err
	}

	return nil
}

// ResetPassword consumes a valid token and replaces the account password.
// The hash swap and the token clearing happen in one conditional update, so
// a token can only ever be spent once even under racing requests.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	if token == "" || newPassword == "" {
		return ErrMissingFields
	}

	// 1. Look up the owner first; gives the invalid-token answer without
	// paying for a hash, and the user id for logging.
	fingerprint := cryptox.FingerprintToken(token)
	now := time.Now().UTC()

	user, err := s.Store.Users().GetUserByResetToken(ctx, fingerprint, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("reset attempted with invalid or expired token")
			return ErrInvalidResetToken
		}
		log.Error("failed to look up reset token", slog.Any("error", err))
		return err
	}

	// 2. Hash the replacement password.
	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return err
	}

	// 3. Conditional consume. A concurrent reset or a fresh forgot-password
	// may have invalidated the token since step 1; losing that race reads
	// the same as an expired token.
	if err := s.Store.Users().ConsumeResetToken(ctx, fingerprint, newHash, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("reset token consumed or invalidated mid-flight",
				slog.String("user_id", user.ID),
			)
			return ErrInvalidResetToken
		}
		log.Error("failed to consume reset token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("password reset completed", slog.String("user_id", user.ID))
	return nil
}

func (s *PasswordResetService) buildResetLink(token string) string {
	return s.ResetURL + "?token=" + url.QueryEscape(token)
}
