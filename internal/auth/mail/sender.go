package mail

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sender delivers the password-reset link out-of-band. The auth service only
// depends on this contract; transport configuration lives with the
// implementation.
type Sender interface {
	SendPasswordReset(ctx context.Context, toEmail, resetLink string, expiresAt time.Time) error
}

type disabledSender struct {
	reason string
}

// NewDisabledSender returns a Sender that fails every send with the given
// reason. Used when no mail transport is configured in environments that
// must not silently swallow reset requests.
func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendPasswordReset(_ context.Context, _, _ string, _ time.Time) error {
	if s.reason == "" {
		return errors.New("mail sender disabled")
	}
	return errors.New(s.reason)
}

// LogSender writes the reset link to the log instead of delivering it.
// Dev and test convenience only; never use where real users are involved.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) SendPasswordReset(_ context.Context, toEmail, resetLink string, expiresAt time.Time) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("password reset link issued",
		slog.String("to", toEmail),
		slog.String("link", resetLink),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}
