// Package sqlite persists the session snapshot in a local SQLite database.
// The whole session lives in a single row; every mutation runs in its own
// transaction so a concurrent reader never observes a half-written session.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/onboardhq/onboardhub/internal/portal/session"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

type Storage struct {
	db  *sql.DB
	dsn string
}

func NewStorage(dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single writer avoids SQLITE_BUSY on concurrent mutations.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{db: db, dsn: dsn}, nil
}

func (s *Storage) Close() error { return s.db.Close() }

// Ping verifies the database file is still reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Load(ctx context.Context) (session.Snapshot, error) {
	var (
		token     string
		identity  string
		expiresAt string
		must      bool
	)

	row := s.db.QueryRowContext(ctx,
		`SELECT token, identity, expires_at, must_change_password FROM session WHERE id = 1`)
	if err := row.Scan(&token, &identity, &expiresAt, &must); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Snapshot{}, session.ErrNotFound
		}
		return session.Snapshot{}, mapUnavailable(err)
	}

	var id onboardsdk.Identity
	if err := json.Unmarshal([]byte(identity), &id); err != nil {
		return session.Snapshot{}, fmt.Errorf("corrupt stored identity: %w", err)
	}

	snap := session.Snapshot{
		Token:              token,
		Identity:           &id,
		MustChangePassword: must,
	}
	if expiresAt != "" {
		ts, err := time.Parse(time.RFC3339, expiresAt)
		if err != nil {
			return session.Snapshot{}, fmt.Errorf("corrupt stored expiry: %w", err)
		}
		snap.ExpiresAt = ts
	}
	return snap, nil
}

func (s *Storage) Save(ctx context.Context, snap session.Snapshot) error {
	if snap.Identity == nil {
		return errors.New("sqlite: refusing to save a session without an identity")
	}

	identity, err := json.Marshal(snap.Identity)
	if err != nil {
		return err
	}

	expiresAt := ""
	if !snap.ExpiresAt.IsZero() {
		expiresAt = snap.ExpiresAt.UTC().Format(time.RFC3339)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO session (id, token, identity, expires_at, must_change_password)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				token = excluded.token,
				identity = excluded.identity,
				expires_at = excluded.expires_at,
				must_change_password = excluded.must_change_password,
				updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
			snap.Token, string(identity), expiresAt, snap.MustChangePassword)
		return err
	})
}

func (s *Storage) SetMustChangePassword(ctx context.Context, must bool) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE session SET must_change_password = ?,
				updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
			 WHERE id = 1`, must)
		if err != nil {
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return session.ErrNotFound
		}
		return nil
	})
}

func (s *Storage) Clear(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE id = 1`)
		return err
	})
}

// withTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapUnavailable(err)
	}

	// Safe to call even after commit.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func mapUnavailable(err error) error {
	return fmt.Errorf("%w: %v", session.ErrUnavailable, err)
}
