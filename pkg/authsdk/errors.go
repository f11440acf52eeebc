package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aayush-1o/freightflow/pkg/httpx"
)

// ============================================================================
// API Error Codes
// ============================================================================

const (
	ErrorCodeMissingFields      = "missing_fields"
	ErrorCodeUserExists         = "user_exists"
	ErrorCodeUserNotFound       = "user_not_found"
	ErrorCodeInvalidPassword    = "invalid_password"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotificationFailed = "notification_failed"
	ErrorCodeRateLimitExceeded  = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// ============================================================================
// APIError - Standard service error type
// ============================================================================

// APIError represents the service's standard error envelope. It implements
// the error interface and is used both by the server (to write HTTP
// responses) and by the SDK client (to represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_token")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
// This is used by HTTP handlers to return errors in the standard envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ============================================================================
// Predefined API Errors
// ============================================================================

var (
	// ErrMissingFields is returned when a required request field is absent
	// or empty.
	ErrMissingFields = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMissingFields,
		Description: "required fields are missing",
	}

	// ErrUserExists is returned when registering with an email that is
	// already taken.
	ErrUserExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUserExists,
		Description: "user already exists",
	}

	// ErrUserNotFound is returned when no account matches the given email.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeUserNotFound,
		Description: "user not found",
	}

	// ErrInvalidPassword is returned when login credentials do not match.
	ErrInvalidPassword = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidPassword,
		Description: "invalid password",
	}

	// ErrInvalidToken is returned when a reset token is unknown, expired,
	// already consumed or superseded. These cases are deliberately not
	// distinguished.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or expired token",
	}

	// ErrNotificationFailed is returned when the reset link could not be
	// emailed. Retrying forgot-password issues a fresh link.
	ErrNotificationFailed = &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodeNotificationFailed,
		Description: "failed to send password reset email",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse attempts to parse an HTTP error response into a typed
// *APIError. Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fall back to a generic error preserving the status code.
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected response: HTTP %d", resp.StatusCode),
	}
}
