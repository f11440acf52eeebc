package authsdk

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse represents the service's standard error envelope.
// This is used internally for parsing HTTP error responses.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_token")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Request Types
// ============================================================================

// RegisterRequest is the payload for POST /api/register.
// Name, Email and Password are required; Phone and Role are optional.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the payload for POST /api/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyTokenRequest is the payload for POST /api/verify-token.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// ResetPasswordRequest is the payload for POST /api/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ============================================================================
// Response Types
// ============================================================================

// MessageResponse is the generic success envelope returned by most endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// User is the public view of an account returned by the login endpoint.
// It never carries credential material.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is returned by POST /api/login on success.
type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks contains per-dependency readiness results.
type HealthChecks struct {
	// Database indicates whether the datastore answered a ping (e.g., "ok", "failed")
	Database string `json:"database"`
}
