package http

import (
	"errors"
	"net/http"

	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/httpx"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

type VerifyTokenHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP reports whether a reset token is currently valid. The check is
// read only; the token stays usable afterwards. Expired, consumed and
// never-issued tokens all answer the same 400.
func (h *VerifyTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.VerifyTokenRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.ResetService.VerifyToken(ctx, req.Token); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetToken):
			authsdk.ErrInvalidToken.WriteError(w)
		default:
			log.Error("token verification failed", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Token is valid",
	})
}
