package authsdk

import (
	"context"
	"net/http"
)

// Register creates a new user account.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/register", req)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusCreated); err != nil {
		return nil, err
	}

	return &msg, nil
}

// Login verifies credentials and returns the account's public profile.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/login", req)
	if err != nil {
		return nil, err
	}

	var login LoginResponse
	if err := decodeJSON(resp, &login, http.StatusOK); err != nil {
		return nil, err
	}

	return &login, nil
}
