package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/internal/auth/store/drivers/sqlite"
	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "freightflow-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

type linkSender struct {
	lastLink string
}

func (s *linkSender) SendPasswordReset(_ context.Context, _, resetLink string, _ time.Time) error {
	s.lastLink = resetLink
	return nil
}

func (s *linkSender) lastToken(t *testing.T) string {
	t.Helper()
	u, err := url.Parse(s.lastLink)
	require.NoError(t, err)
	return u.Query().Get("token")
}

// newTestServer wires a full router against an in-memory database.
func newTestServer(t *testing.T) (*httptest.Server, *linkSender) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	sender := &linkSender{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := NewRouter("test", st, logger)
	router.UserService = &service.UserService{Store: st}
	router.PasswordResetService = &service.PasswordResetService{
		Store:    st,
		Mailer:   sender,
		ResetURL: "http://localhost:5500/pages/reset-password.html",
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, sender
}

func postJSON(t *testing.T, srv *httptest.Server, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decodeBody[authsdk.ErrorResponse](t, resp).Error
}

func TestRegisterEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("creates account", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/register", authsdk.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Phone:    "0400000000",
			Password: "pw1",
			Role:     "customer",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, "User registered successfully",
			decodeBody[authsdk.MessageResponse](t, resp).Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/register", authsdk.RegisterRequest{
			Name:     "Aliah",
			Email:    "alice@example.com",
			Password: "pw2",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		require.Equal(t, authsdk.ErrorCodeUserExists, errorCode(t, resp))
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/register", authsdk.RegisterRequest{Email: "x@example.com"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, authsdk.ErrorCodeMissingFields, errorCode(t, resp))
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/register", "application/json", bytes.NewReader([]byte("{")))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv, "/api/register", authsdk.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pw1", Role: "driver",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("success returns public profile only", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/login", authsdk.LoginRequest{
			Email: "alice@example.com", Password: "pw1",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		login := decodeBody[authsdk.LoginResponse](t, resp)
		require.Equal(t, "Login successful", login.Message)
		require.Equal(t, "Alice", login.User.Name)
		require.Equal(t, "driver", login.User.Role)
		require.NotEmpty(t, login.User.ID)
	})

	t.Run("password hash never leaves the service", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/login", authsdk.LoginRequest{
			Email: "alice@example.com", Password: "pw1",
		})
		raw := decodeBody[map[string]any](t, resp)
		user, ok := raw["user"].(map[string]any)
		require.True(t, ok)
		require.NotContains(t, user, "password_hash")
		require.NotContains(t, user, "password")
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/login", authsdk.LoginRequest{
			Email: "alice@example.com", Password: "nope",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, authsdk.ErrorCodeInvalidPassword, errorCode(t, resp))
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/login", authsdk.LoginRequest{
			Email: "ghost@example.com", Password: "pw1",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, authsdk.ErrorCodeUserNotFound, errorCode(t, resp))
	})

	t.Run("missing credentials", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/login", authsdk.LoginRequest{Email: "alice@example.com"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPasswordResetEndpoints(t *testing.T) {
	srv, sender := newTestServer(t)

	resp := postJSON(t, srv, "/api/register", authsdk.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "old-pw",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("full flow", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/forgot-password", authsdk.ForgotPasswordRequest{
			Email: "alice@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		token := sender.lastToken(t)
		require.NotEmpty(t, token)

		resp = postJSON(t, srv, "/api/verify-token", authsdk.VerifyTokenRequest{Token: token})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Token is valid", decodeBody[authsdk.MessageResponse](t, resp).Message)

		resp = postJSON(t, srv, "/api/reset-password", authsdk.ResetPasswordRequest{
			Token: token, NewPassword: "new-pw",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// Old password dead, new one works.
		resp = postJSON(t, srv, "/api/login", authsdk.LoginRequest{
			Email: "alice@example.com", Password: "old-pw",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp = postJSON(t, srv, "/api/login", authsdk.LoginRequest{
			Email: "alice@example.com", Password: "new-pw",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// Token is spent.
		resp = postJSON(t, srv, "/api/reset-password", authsdk.ResetPasswordRequest{
			Token: token, NewPassword: "again",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, authsdk.ErrorCodeInvalidToken, errorCode(t, resp))
	})

	t.Run("forgot-password for unknown email", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/forgot-password", authsdk.ForgotPasswordRequest{
			Email: "ghost@example.com",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("verify unknown token", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/verify-token", authsdk.VerifyTokenRequest{Token: "bogus"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, authsdk.ErrorCodeInvalidToken, errorCode(t, resp))
	})

	t.Run("reset without new password", func(t *testing.T) {
		resp := postJSON(t, srv, "/api/forgot-password", authsdk.ForgotPasswordRequest{
			Email: "alice@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = postJSON(t, srv, "/api/reset-password", authsdk.ResetPasswordRequest{
			Token: sender.lastToken(t),
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, authsdk.ErrorCodeMissingFields, errorCode(t, resp))
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("livez", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/livez")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		health := decodeBody[authsdk.HealthResponse](t, resp)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "test", health.Version)
	})

	t.Run("readyz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		health := decodeBody[authsdk.HealthResponse](t, resp)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
