package auth_test

import (
	"net/http"
	"testing"

	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestLogin covers credential verification through the public API.
func TestLogin(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	_, err := client.Register(t.Context(), authsdk.RegisterRequest{
		Name:     "Alice Example",
		Email:    "alice@example.com",
		Password: "hunter2",
		Role:     "driver",
	})
	require.NoError(t, err)

	t.Run("valid credentials return the public profile", func(t *testing.T) {
		login, err := client.Login(t.Context(), authsdk.LoginRequest{
			Email:    "alice@example.com",
			Password: "hunter2",
		})
		require.NoError(t, err)
		require.Equal(t, "Login successful", login.Message)
		require.Equal(t, "Alice Example", login.User.Name)
		require.Equal(t, "alice@example.com", login.User.Email)
		require.Equal(t, "driver", login.User.Role)
		require.NotEmpty(t, login.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(t.Context(), authsdk.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong",
		})

		var apiErr *authsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, authsdk.ErrorCodeInvalidPassword, apiErr.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := client.Login(t.Context(), authsdk.LoginRequest{
			Email:    "ghost@example.com",
			Password: "hunter2",
		})

		var apiErr *authsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.Equal(t, authsdk.ErrorCodeUserNotFound, apiErr.Code)
	})
}
