package access_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onboardhq/onboardhub/internal/portal/access"
	"github.com/onboardhq/onboardhub/internal/portal/session"
	"github.com/onboardhq/onboardhub/internal/portal/session/drivers/memory"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

func newGate(t *testing.T) (*access.Gate, *session.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := session.NewStore(memory.NewStorage(), logger)
	return access.NewGate(store, logger), store
}

func signIn(t *testing.T, store *session.Store, role onboardsdk.Role, mustChange bool) {
	t.Helper()

	id := onboardsdk.Identity{UserID: 1, Email: "u@example.com", Role: role}
	err := store.Set(context.Background(), id, "tok", time.Now().Add(time.Hour), mustChange)
	require.NoError(t, err)
}

func TestAnonymousVisitor(t *testing.T) {
	t.Parallel()

	gate, _ := newGate(t)

	require.True(t, gate.Evaluate("/login").Allowed)
	require.True(t, gate.Evaluate("/register").Allowed)

	for _, path := range []string{"/dashboard", "/tasks", "/my-tasks", "/admin/users", "/change-password"} {
		decision := gate.Evaluate(path)
		require.False(t, decision.Allowed, path)
		require.Equal(t, "/login", decision.RedirectTo, path)
	}

	// Unknown paths also land on login.
	require.Equal(t, "/login", gate.Evaluate("/nope").RedirectTo)
	require.Equal(t, "/login", gate.Evaluate("/").RedirectTo)
}

func TestSignedInUserBouncedOffLoginPages(t *testing.T) {
	t.Parallel()

	t.Run("staff to dashboard", func(t *testing.T) {
		t.Parallel()
		gate, store := newGate(t)
		signIn(t, store, onboardsdk.RoleHR, false)

		for _, path := range []string{"/login", "/register"} {
			decision := gate.Evaluate(path)
			require.False(t, decision.Allowed, path)
			require.Equal(t, "/dashboard", decision.RedirectTo, path)
		}
	})

	t.Run("employee to employee dashboard", func(t *testing.T) {
		t.Parallel()
		gate, store := newGate(t)
		signIn(t, store, onboardsdk.RoleEmployee, false)

		decision := gate.Evaluate("/login")
		require.Equal(t, "/employee/dashboard", decision.RedirectTo)
	})
}

func TestRoleRestrictions(t *testing.T) {
	t.Parallel()

	t.Run("employee denied staff pages", func(t *testing.T) {
		t.Parallel()
		gate, store := newGate(t)
		signIn(t, store, onboardsdk.RoleEmployee, false)

		for _, path := range []string{"/dashboard", "/employees", "/reports", "/admin/users"} {
			decision := gate.Evaluate(path)
			require.False(t, decision.Allowed, path)
			require.Equal(t, "/employee/dashboard", decision.RedirectTo, path)
		}

		require.True(t, gate.Evaluate("/my-tasks").Allowed)
		require.True(t, gate.Evaluate("/employee/summary").Allowed)
		require.True(t, gate.Evaluate("/tasks/3").Allowed)
	})

	t.Run("hr denied employee pages", func(t *testing.T) {
		t.Parallel()
		gate, store := newGate(t)
		signIn(t, store, onboardsdk.RoleHR, false)

		for _, path := range []string{"/my-tasks", "/my-documents", "/employee/dashboard"} {
			decision := gate.Evaluate(path)
			require.False(t, decision.Allowed, path)
			require.Equal(t, "/dashboard", decision.RedirectTo, path)
		}

		require.True(t, gate.Evaluate("/employees/12/edit").Allowed)
		require.True(t, gate.Evaluate("/documents").Allowed)
	})

	t.Run("admin passes staff pages", func(t *testing.T) {
		t.Parallel()
		gate, store := newGate(t)
		signIn(t, store, onboardsdk.RoleAdmin, false)

		for _, path := range []string{"/dashboard", "/admin/settings", "/admin/activity-logs", "/reports"} {
			require.True(t, gate.Evaluate(path).Allowed, path)
		}
		require.False(t, gate.Evaluate("/my-tasks").Allowed, "admin is not an employee")
	})
}

func TestExpiredSessionIsAnonymous(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)
	id := onboardsdk.Identity{UserID: 1, Email: "u@example.com", Role: onboardsdk.RoleHR}
	err := store.Set(context.Background(), id, "tok", time.Now().Add(-time.Minute), false)
	require.NoError(t, err)

	decision := gate.Evaluate("/dashboard")
	require.False(t, decision.Allowed)
	require.Equal(t, "/login", decision.RedirectTo)

	require.True(t, gate.Evaluate("/login").Allowed, "expired users may reach the login page")
}

func TestForcedPasswordChangeOverlay(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)
	signIn(t, store, onboardsdk.RoleHR, true)

	// Otherwise-allowed pages stay allowed but carry the blocking overlay.
	for _, path := range []string{"/dashboard", "/employees", "/tasks"} {
		decision := gate.Evaluate(path)
		require.True(t, decision.Allowed, path)
		require.True(t, decision.ForcePasswordChange, path)
	}

	// The password change page itself is overlay-free.
	decision := gate.Evaluate("/change-password")
	require.True(t, decision.Allowed)
	require.False(t, decision.ForcePasswordChange)

	// Denied navigations never carry the overlay; the redirect stands.
	decision = gate.Evaluate("/my-tasks")
	require.False(t, decision.Allowed)
	require.Equal(t, "/dashboard", decision.RedirectTo)
	require.False(t, decision.ForcePasswordChange)

	// The overlay re-arms on every evaluation until the flag clears.
	require.True(t, gate.Evaluate("/dashboard").ForcePasswordChange)
	require.NoError(t, store.ClearMustChangePassword(context.Background()))

	decision = gate.Evaluate("/dashboard")
	require.True(t, decision.Allowed)
	require.False(t, decision.ForcePasswordChange)
}

func TestUnknownPathForSignedInUser(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)
	signIn(t, store, onboardsdk.RoleEmployee, false)

	decision := gate.Evaluate("/totally/unknown")
	require.False(t, decision.Allowed)
	require.Equal(t, "/employee/dashboard", decision.RedirectTo)
}
