// Package app wires the portal together: configuration, logging, session
// storage, the backend client, the credential gateway and the navigation
// gate.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/onboardhq/onboardhub/internal/portal/access"
	"github.com/onboardhq/onboardhub/internal/portal/auth"
	"github.com/onboardhq/onboardhub/internal/portal/session"
	"github.com/onboardhq/onboardhub/internal/portal/session/drivers/sqlite"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
	"github.com/onboardhq/onboardhub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	storage *sqlite.Storage

	API      *onboardsdk.Client
	Sessions *session.Store
	Gateway  *auth.Gateway
	Gate     *access.Gate
}

// New creates an Application with all dependencies initialized and the
// persisted session hydrated. A hydration failure is not fatal: the portal
// starts unauthenticated instead.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "onboardhub",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStorage(); err != nil {
		return nil, err
	}

	app.Sessions = session.NewStore(app.storage, app.logger)
	if err := app.Sessions.Hydrate(ctx); err != nil {
		app.logger.Warn("starting without a restored session", "error", err)
	}

	app.API = onboardsdk.NewClient(cfg.APIBaseURL)
	app.Gateway = auth.NewGateway(app.API, app.Sessions, app.logger)
	app.Gate = access.NewGate(app.Sessions, app.logger)

	return app, nil
}

// Logger exposes the application logger for command-level output.
func (app *Application) Logger() *slog.Logger { return app.logger }

// Close releases the session database.
func (app *Application) Close() error {
	if err := app.storage.Close(); err != nil {
		app.logger.Error("error closing session storage", "error", err)
		return err
	}
	return nil
}

// initStorage opens the session database and applies migrations.
func (app *Application) initStorage() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.SessionFile)
	storage, err := sqlite.NewStorage(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize session storage: %w", err)
	}

	if err := storage.ApplyMigrations(); err != nil {
		_ = storage.Close()
		return fmt.Errorf("failed to apply session storage migrations: %w", err)
	}

	app.storage = storage
	return nil
}
