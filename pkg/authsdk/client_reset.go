package authsdk

import (
	"context"
	"net/http"
)

// ForgotPassword asks the service to email a password-reset link to the
// account with the given address. Any previously issued link stops working.
func (c *SDKClient) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/forgot-password", req)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}

	return &msg, nil
}

// VerifyToken checks whether a reset token is still valid without consuming
// it. Useful for validating the link before showing a new-password form.
func (c *SDKClient) VerifyToken(ctx context.Context, req VerifyTokenRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/verify-token", req)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}

	return &msg, nil
}

// ResetPassword consumes a reset token and replaces the account password.
// The token is single use; a second call with the same token fails with
// ErrorCodeInvalidToken.
func (c *SDKClient) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/reset-password", req)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}

	return &msg, nil
}
