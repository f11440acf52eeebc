package auth_test

import (
	"net/http"
	"testing"

	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRegister covers account creation through the public API.
func TestRegister(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	t.Run("creates an account", func(t *testing.T) {
		msg, err := client.Register(t.Context(), authsdk.RegisterRequest{
			Name:     "Alice Example",
			Email:    "alice@example.com",
			Phone:    "0400000000",
			Password: "hunter2",
			Role:     "customer",
		})
		require.NoError(t, err)
		require.Equal(t, "User registered successfully", msg.Message)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := client.Register(t.Context(), authsdk.RegisterRequest{
			Name:     "Alice Again",
			Email:    "alice@example.com",
			Password: "different",
		})

		var apiErr *authsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Equal(t, authsdk.ErrorCodeUserExists, apiErr.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := client.Register(t.Context(), authsdk.RegisterRequest{
			Email: "bob@example.com",
		})

		var apiErr *authsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, authsdk.ErrorCodeMissingFields, apiErr.Code)
	})
}
