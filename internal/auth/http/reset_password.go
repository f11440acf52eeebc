package http

import (
	"errors"
	"net/http"

	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/httpx"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

type ResetPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP consumes a reset token and replaces the account password. The
// token is spent on success; replays and races answer 400 like any other
// invalid token.
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.ResetPasswordRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.ResetService.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			authsdk.ErrMissingFields.WriteError(w)
		case errors.Is(err, service.ErrInvalidResetToken):
			authsdk.ErrInvalidToken.WriteError(w)
		default:
			log.Error("password reset failed", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Password reset successful",
	})
}
