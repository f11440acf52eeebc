package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aayush-1o/freightflow/internal/auth/store"
	"github.com/aayush-1o/freightflow/internal/auth/store/drivers/sqlite"
	"github.com/aayush-1o/freightflow/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "freightflow-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates a user and never exposes the plaintext", func(t *testing.T) {
		user, err := svc.Register(ctx, "A", "a@x.com", "0400000000", "pw1", "customer")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "a@x.com", user.Email)
		require.Equal(t, "customer", user.Role)
		require.NotEqual(t, "pw1", user.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("pw1", user.PasswordHash))
	})

	t.Run("duplicate email is rejected, first record survives", func(t *testing.T) {
		_, err := svc.Register(ctx, "B", "a@x.com", "", "pw2", "admin")
		require.ErrorIs(t, err, ErrUserExists)

		user, err := svc.Login(ctx, "a@x.com", "pw1")
		require.NoError(t, err)
		require.Equal(t, "A", user.Name)
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, tc := range []struct{ name, email, password string }{
			{"", "b@x.com", "pw"},
			{"B", "", "pw"},
			{"B", "b@x.com", ""},
		} {
			_, err := svc.Register(ctx, tc.name, tc.email, "", tc.password, "")
			require.ErrorIs(t, err, ErrMissingFields)
		}
	})

	t.Run("phone and role are optional and unvalidated", func(t *testing.T) {
		user, err := svc.Register(ctx, "C", "c@x.com", "", "pw3", "")
		require.NoError(t, err)
		require.Empty(t, user.Phone)
		require.Empty(t, user.Role)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	registered, err := svc.Register(ctx, "A", "a@x.com", "", "pw1", "driver")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "a@x.com", "pw1")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)

		// Public view carries no credential material
		pub := user.Public()
		require.Equal(t, registered.ID, pub.ID)
		require.Equal(t, "A", pub.Name)
		require.Equal(t, "driver", pub.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "a@x.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@x.com", "pw1")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("email matching is case-sensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, "A@x.com", "pw1")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
