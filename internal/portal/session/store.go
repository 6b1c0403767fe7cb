package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/onboardhq/onboardhub/pkg/idx"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

// Subscriber is notified after every committed session change. The argument
// is the new identity, or nil after a logout. Notifications are delivered
// synchronously and strictly after the durable storage write, so a
// subscriber reading storage from inside the callback sees the new value.
type Subscriber func(*onboardsdk.Identity)

// Store is the single source of truth for "who is logged in". It keeps an
// in-memory cache in front of durable Storage; the storage write is the
// commit point and the cache never disagrees with storage after an
// operation returns.
type Store struct {
	storage Storage
	logger  *slog.Logger

	mu   sync.RWMutex
	snap Snapshot
	subs map[idx.ID]Subscriber
}

// NewStore creates a session store over the given storage. Call Hydrate
// before first use to pick up a session persisted by a previous run.
func NewStore(storage Storage, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
		subs:    make(map[idx.ID]Subscriber),
	}
}

// Hydrate loads the persisted session into the cache. A missing session is
// not an error. When storage is unavailable the cache is left empty: the
// store fails closed to "unauthenticated" rather than guessing.
func (s *Store) Hydrate(ctx context.Context) error {
	snap, err := s.storage.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.snap = Snapshot{}
		s.mu.Unlock()

		if errors.Is(err, ErrNotFound) {
			return nil
		}
		s.logger.Warn("session storage unreadable, treating as unauthenticated", "error", err)
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// Current returns the cached identity without a network or storage call,
// or nil when unauthenticated.
func (s *Store) Current() *onboardsdk.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap.Identity == nil {
		return nil
	}
	id := *s.snap.Identity
	return &id
}

// Token returns the cached bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Token
}

// IsAuthenticated reports whether a non-expired credential is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap.Token == "" {
		return false
	}

	expiry := s.snap.ExpiresAt
	if expiry.IsZero() {
		expiry = tokenExpiry(s.snap.Token)
	}
	if !expiry.IsZero() && time.Now().After(expiry) {
		return false
	}

	return true
}

// MustChangePassword reports whether the forced password-change flag is
// set. The flag is persisted, so it survives process restarts until a
// successful password change clears it.
func (s *Store) MustChangePassword() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.MustChangePassword
}

// Set commits a new session: durable storage first, then the cache, then
// synchronous notification. If the storage write fails nothing changes.
func (s *Store) Set(
	ctx context.Context,
	identity onboardsdk.Identity,
	token string,
	expiresAt time.Time,
	mustChangePassword bool,
) error {
	snap := Snapshot{
		Token:              token,
		Identity:           &identity,
		ExpiresAt:          expiresAt,
		MustChangePassword: mustChangePassword,
	}

	if err := s.storage.Save(ctx, snap); err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	s.logger.Info("session established",
		"user_id", identity.UserID,
		"role", identity.Role.String(),
		"must_change_password", mustChangePassword,
	)

	notify(subs, &identity)
	return nil
}

// Clear removes the session. Clearing an already-empty store is a no-op:
// storage is not touched again and no notification is emitted.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.RLock()
	empty := s.snap.Token == "" && s.snap.Identity == nil
	s.mu.RUnlock()
	if empty {
		return nil
	}

	if err := s.storage.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = Snapshot{}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	s.logger.Info("session cleared")
	notify(subs, nil)
	return nil
}

// ClearMustChangePassword drops the forced password-change flag, leaving
// the rest of the session untouched.
func (s *Store) ClearMustChangePassword(ctx context.Context) error {
	if err := s.storage.SetMustChangePassword(ctx, false); err != nil {
		return err
	}

	s.mu.Lock()
	s.snap.MustChangePassword = false
	s.mu.Unlock()
	return nil
}

// Subscribe registers a change subscriber and returns a handle for
// Unsubscribe.
func (s *Store) Subscribe(fn Subscriber) idx.ID {
	id := idx.New()

	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()
	return id
}

// Unsubscribe removes a subscriber. Unknown handles are ignored.
func (s *Store) Unsubscribe(id idx.ID) {
	s.mu.Lock()
	delete(s.subs, id)
	s.mu.Unlock()
}

// snapshotSubscribers copies the subscriber set; callers must hold mu.
// Notifications run outside the lock so a subscriber may call back into
// the store.
func (s *Store) snapshotSubscribers() []Subscriber {
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []Subscriber, identity *onboardsdk.Identity) {
	for _, fn := range subs {
		fn(identity)
	}
}

// tokenExpiry recovers the expiry from the bearer token's exp claim when
// the server omitted an explicit expires timestamp. The signature is NOT
// verified; the server re-checks the token on every request, this is only
// a local freshness hint.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
