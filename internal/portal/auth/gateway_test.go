package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onboardhq/onboardhub/internal/portal/auth"
	"github.com/onboardhq/onboardhub/internal/portal/session"
	"github.com/onboardhq/onboardhub/internal/portal/session/drivers/memory"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGateway(t *testing.T, handler http.HandlerFunc) (*auth.Gateway, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(memory.NewStorage(), discardLogger())
	gateway := auth.NewGateway(onboardsdk.NewClient(server.URL), store, discardLogger())
	return gateway, store
}

func loginHandler(t *testing.T, mustChange bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"succeeded": true,
			"data": map[string]any{
				"userId":             42,
				"email":              "hr@example.com",
				"firstName":          "Harriet",
				"lastName":           "Reyes",
				"role":               2,
				"token":              "token-123",
				"expires":            time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
				"mustChangePassword": mustChange,
			},
		}))
	}
}

func TestLoginCommitsSession(t *testing.T) {
	t.Parallel()

	gateway, store := newGateway(t, loginHandler(t, true))

	identity, err := gateway.Login(context.Background(), "hr@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, onboardsdk.RoleHR, identity.Role)

	require.True(t, store.IsAuthenticated())
	require.Equal(t, "token-123", store.Token())
	require.True(t, store.MustChangePassword())
}

func TestLoginRejectionLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	gateway, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"succeeded": false,
			"message":   "Invalid email or password",
		})
	})

	_, err := gateway.Login(context.Background(), "hr@example.com", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.Current())
	require.Empty(t, store.Token())
}

func TestLoginNetworkFailureMapsToErrNetwork(t *testing.T) {
	t.Parallel()

	store := session.NewStore(memory.NewStorage(), discardLogger())
	gateway := auth.NewGateway(onboardsdk.NewClient("http://127.0.0.1:1"), store, discardLogger())

	_, err := gateway.Login(context.Background(), "hr@example.com", "hunter2")
	require.ErrorIs(t, err, auth.ErrNetwork)
	require.False(t, store.IsAuthenticated())
}

func TestRegisterCommitsSession(t *testing.T) {
	t.Parallel()

	gateway, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Auth/register", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"succeeded": true,
			"data": map[string]any{
				"userId":    7,
				"email":     "new@example.com",
				"firstName": "Nila",
				"lastName":  "Okafor",
				"role":      3,
				"token":     "token-7",
			},
		})
	})

	identity, err := gateway.Register(context.Background(), onboardsdk.RegisterRequest{
		Email:     "new@example.com",
		Password:  "password1",
		FirstName: "Nila",
		LastName:  "Okafor",
		Role:      onboardsdk.RoleEmployee,
	})
	require.NoError(t, err)
	require.Equal(t, onboardsdk.RoleEmployee, identity.Role)
	require.Equal(t, "token-7", store.Token())
}

func TestChangePasswordMismatchFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	called := false
	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := gateway.ChangePassword(context.Background(), "old", "new1234", "different")
	require.ErrorIs(t, err, auth.ErrPasswordMismatch)
	require.False(t, called, "mismatch must be caught before any request")
}

func TestChangePasswordClearsOnlyTheFlag(t *testing.T) {
	t.Parallel()

	gateway, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Auth/login":
			loginHandler(t, true)(w, r)
		case "/Auth/change-password":
			require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"succeeded": true, "message": "changed"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	_, err := gateway.Login(ctx, "hr@example.com", "hunter2")
	require.NoError(t, err)
	require.True(t, store.MustChangePassword())

	require.NoError(t, gateway.ChangePassword(ctx, "hunter2", "new1234", "new1234"))

	require.False(t, store.MustChangePassword())
	require.Equal(t, "token-123", store.Token(), "token survives a password change")
	require.Equal(t, int64(42), store.Current().UserID, "identity survives a password change")
}

func TestChangePasswordRejectedKeepsFlag(t *testing.T) {
	t.Parallel()

	gateway, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Auth/login":
			loginHandler(t, true)(w, r)
		case "/Auth/change-password":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"succeeded": false,
				"message":   "current password is incorrect",
			})
		}
	})
	ctx := context.Background()

	_, err := gateway.Login(ctx, "hr@example.com", "hunter2")
	require.NoError(t, err)

	err = gateway.ChangePassword(ctx, "wrong", "new1234", "new1234")
	require.ErrorIs(t, err, auth.ErrPasswordRejected)
	require.True(t, store.MustChangePassword(), "rejected change keeps the flag armed")
}

func TestChangePasswordRequiresSession(t *testing.T) {
	t.Parallel()

	gateway, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	err := gateway.ChangePassword(context.Background(), "old", "new1234", "new1234")
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	gateway, store := newGateway(t, loginHandler(t, false))
	ctx := context.Background()

	_, err := gateway.Login(ctx, "hr@example.com", "hunter2")
	require.NoError(t, err)
	require.True(t, store.IsAuthenticated())

	require.NoError(t, gateway.Logout(ctx))
	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.Current())

	// Logging out twice is harmless.
	require.NoError(t, gateway.Logout(ctx))
}
