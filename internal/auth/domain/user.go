package domain

import "time"

// User is the credential record persisted by the store. ID is a ULID assigned
// at creation and never changes. The reset token fields are both set or both
// nil; the schema enforces this.
type User struct {
	ID           string
	Name         string
	Email        string // unique, matched case-sensitively as stored
	Phone        string // optional
	PasswordHash string // argon2id PHC encoded, never the plaintext
	Role         string // opaque tag, stored as given

	// ResetTokenHash holds the SHA-256 fingerprint of the pending reset
	// token, not the token itself. Nil when no reset is pending.
	ResetTokenHash    *string
	ResetTokenExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPendingReset reports whether a reset token is currently attached,
// regardless of expiry.
func (u User) HasPendingReset() bool {
	return u.ResetTokenHash != nil
}

// PublicUser is the subset of a User safe to return to a client. It excludes
// the password hash and any reset token material.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public returns the client-safe view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
