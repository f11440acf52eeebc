package http

import (
	"errors"
	"net/http"

	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/httpx"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP creates a new user account from a JSON payload of name, email,
// phone, password and role. Responds 201 on success, 409 when the email is
// already registered.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	_, err := h.UserService.Register(ctx, req.Name, req.Email, req.Phone, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			authsdk.ErrMissingFields.WriteError(w)
		case errors.Is(err, service.ErrUserExists):
			authsdk.ErrUserExists.WriteError(w)
		default:
			log.Error("registration failed", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.MessageResponse{
		Message: "User registered successfully",
	})
}
