package http

import (
	"errors"
	"net/http"

	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/httpx"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

type ForgotPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP issues a password-reset token for the given email and mails the
// reset link. Any previously pending token for the account is invalidated.
// A delivery failure is surfaced as 502 so the caller knows to retry.
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.ForgotPasswordRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if req.Email == "" {
		authsdk.ErrMissingFields.WriteError(w)
		return
	}

	if err := h.ResetService.ForgotPassword(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			authsdk.ErrUserNotFound.WriteError(w)
		case errors.Is(err, service.ErrNotificationFailed):
			log.Error("reset link delivery failed", "error", err)
			authsdk.ErrNotificationFailed.WriteError(w)
		default:
			log.Error("forgot-password failed", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Password reset link sent to your email",
	})
}
