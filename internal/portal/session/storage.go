package session

import (
	"context"
	"errors"
	"time"

	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

// Snapshot is the full persisted session state: the bearer token, the
// identity it belongs to, the credential expiry, and the forced
// password-change flag. A nil Identity means "unauthenticated".
type Snapshot struct {
	Token              string
	Identity           *onboardsdk.Identity
	ExpiresAt          time.Time
	MustChangePassword bool
}

var (
	// ErrNotFound is returned by Load when no session has been stored.
	ErrNotFound = errors.New("session: no stored session")

	// ErrUnavailable is returned when durable storage cannot be reached.
	// Readers above treat this as "unauthenticated" rather than failing
	// open.
	ErrUnavailable = errors.New("session: storage unavailable")
)

// Storage is durable client-side persistence for the session snapshot.
// Save and Clear are atomic: after either returns, a concurrent Load sees
// either the old state or the new state, never a mix.
type Storage interface {
	// Load reads the stored snapshot. Returns ErrNotFound when nothing
	// has been stored (or the session was cleared).
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the stored snapshot in one atomic write.
	Save(ctx context.Context, snap Snapshot) error

	// SetMustChangePassword updates only the forced password-change flag,
	// leaving token and identity untouched.
	SetMustChangePassword(ctx context.Context, must bool) error

	// Clear removes the stored snapshot. Clearing an empty store is a
	// no-op, not an error.
	Clear(ctx context.Context) error

	Close() error
}
