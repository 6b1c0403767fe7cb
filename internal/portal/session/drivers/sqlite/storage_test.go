package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onboardhq/onboardhub/internal/portal/session"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "session.db")
	storage, err := NewStorage(dsn)
	require.NoError(t, err)
	require.NoError(t, storage.ApplyMigrations())
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

func testSnapshot() session.Snapshot {
	return session.Snapshot{
		Token: "token-abc",
		Identity: &onboardsdk.Identity{
			UserID:    42,
			Email:     "hr@example.com",
			FirstName: "Harriet",
			LastName:  "Reyes",
			Role:      onboardsdk.RoleHR,
		},
		ExpiresAt:          time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		MustChangePassword: true,
	}
}

func TestLoadBeforeAnySave(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	_, err := storage.Load(context.Background())
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	want := testSnapshot()
	require.NoError(t, storage.Save(ctx, want))

	got, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want.Token, got.Token)
	require.Equal(t, want.Identity, got.Identity)
	require.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
	require.True(t, got.MustChangePassword)
}

func TestSaveReplacesPreviousSession(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	first := testSnapshot()
	require.NoError(t, storage.Save(ctx, first))

	second := testSnapshot()
	second.Token = "token-def"
	second.Identity.UserID = 7
	second.MustChangePassword = false
	require.NoError(t, storage.Save(ctx, second))

	got, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-def", got.Token)
	require.Equal(t, int64(7), got.Identity.UserID)
	require.False(t, got.MustChangePassword)
}

func TestSetMustChangePassword(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, testSnapshot()))
	require.NoError(t, storage.SetMustChangePassword(ctx, false))

	got, err := storage.Load(ctx)
	require.NoError(t, err)
	require.False(t, got.MustChangePassword)
	require.Equal(t, "token-abc", got.Token, "flag update must not disturb the token")
}

func TestSetMustChangePasswordWithoutSession(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	err := storage.SetMustChangePassword(context.Background(), false)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, testSnapshot()))
	require.NoError(t, storage.Clear(ctx))

	_, err := storage.Load(ctx)
	require.ErrorIs(t, err, session.ErrNotFound)

	// Clearing again must not error.
	require.NoError(t, storage.Clear(ctx))
}

func TestSaveRejectsNilIdentity(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	err := storage.Save(context.Background(), session.Snapshot{Token: "tok"})
	require.Error(t, err)
	require.False(t, errors.Is(err, session.ErrUnavailable))
}

func TestSessionSurvivesReopen(t *testing.T) {
	t.Parallel()

	dsn := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	storage, err := NewStorage(dsn)
	require.NoError(t, err)
	require.NoError(t, storage.ApplyMigrations())
	require.NoError(t, storage.Save(ctx, testSnapshot()))
	require.NoError(t, storage.Close())

	reopened, err := NewStorage(dsn)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.ApplyMigrations())

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-abc", got.Token)
	require.Equal(t, onboardsdk.RoleHR, got.Identity.Role)
}
