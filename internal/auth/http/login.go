package http

import (
	"errors"
	"net/http"

	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/httpx"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP verifies email and password credentials and returns the account's
// public profile. Unknown emails yield 404, wrong passwords 401.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		authsdk.ErrMissingFields.WriteError(w)
		return
	}

	user, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			authsdk.ErrUserNotFound.WriteError(w)
		case errors.Is(err, service.ErrInvalidPassword):
			authsdk.ErrInvalidPassword.WriteError(w)
		default:
			log.Error("login failed", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	pub := user.Public()
	httpx.WriteJSON(w, http.StatusOK, authsdk.LoginResponse{
		Message: "Login successful",
		User: authsdk.User{
			ID:    pub.ID,
			Name:  pub.Name,
			Email: pub.Email,
			Role:  pub.Role,
		},
	})
}
