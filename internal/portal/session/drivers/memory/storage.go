// Package memory provides an in-process session storage driver. It backs
// tests and ephemeral runs where nothing should outlive the process.
package memory

import (
	"context"
	"sync"

	"github.com/onboardhq/onboardhub/internal/portal/session"
)

type Storage struct {
	mu     sync.Mutex
	snap   session.Snapshot
	stored bool

	// FailWith, when set, makes every operation return that error. Tests
	// use it to exercise the fail-closed paths.
	FailWith error
}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) Load(ctx context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return session.Snapshot{}, s.FailWith
	}
	if !s.stored {
		return session.Snapshot{}, session.ErrNotFound
	}

	snap := s.snap
	if snap.Identity != nil {
		id := *snap.Identity
		snap.Identity = &id
	}
	return snap, nil
}

func (s *Storage) Save(ctx context.Context, snap session.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	if snap.Identity != nil {
		id := *snap.Identity
		snap.Identity = &id
	}
	s.snap = snap
	s.stored = true
	return nil
}

func (s *Storage) SetMustChangePassword(ctx context.Context, must bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	if !s.stored {
		return session.ErrNotFound
	}

	s.snap.MustChangePassword = must
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	s.snap = session.Snapshot{}
	s.stored = false
	return nil
}

func (s *Storage) Close() error { return nil }
