// Package auth mediates between the backend's credential endpoints and the
// local session store. It owns the mapping from wire failures to stable
// sentinel errors, enforces one credential operation at a time, and commits
// successful results to the store atomically.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/onboardhq/onboardhub/internal/portal/session"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

var (
	// ErrInvalidCredentials covers rejected logins: wrong email, wrong
	// password, disabled account. The server's distinction is deliberately
	// collapsed so callers cannot leak which part was wrong.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrPasswordMismatch is returned before any network call when the new
	// password and its confirmation differ.
	ErrPasswordMismatch = errors.New("auth: new password and confirmation do not match")

	// ErrPasswordRejected means the server refused the password change,
	// usually because the current password was wrong or the new one failed
	// policy.
	ErrPasswordRejected = errors.New("auth: password change rejected")

	// ErrNotAuthenticated is returned for operations that need a live
	// session when there is none.
	ErrNotAuthenticated = errors.New("auth: not authenticated")

	// ErrOperationInFlight is returned when a credential operation is
	// already running. Callers retry after the first one settles rather
	// than racing two commits.
	ErrOperationInFlight = errors.New("auth: another credential operation is in flight")

	// ErrThrottled is returned when login attempts arrive faster than the
	// local rate limit allows.
	ErrThrottled = errors.New("auth: too many login attempts, slow down")

	// ErrNetwork wraps transport failures where the backend never answered.
	ErrNetwork = errors.New("auth: backend unreachable")

	// ErrServer wraps unexpected backend failures (5xx, malformed bodies).
	ErrServer = errors.New("auth: backend error")
)

// Gateway drives login, registration, logout and password changes against
// the backend and keeps the session store in sync with the outcomes.
type Gateway struct {
	api      *onboardsdk.Client
	sessions *session.Store
	logger   *slog.Logger
	limiter  *rate.Limiter

	busy atomic.Bool
}

func NewGateway(api *onboardsdk.Client, sessions *session.Store, logger *slog.Logger) *Gateway {
	return &Gateway{
		api:      api,
		sessions: sessions,
		logger:   logger,
		// Burst of 5 then one attempt per 2s. Local politeness only, the
		// backend enforces its own limits.
		limiter: rate.NewLimiter(rate.Limit(0.5), 5),
	}
}

// Login authenticates against the backend and, on success, commits the new
// session. On any failure the existing session (if any) is left untouched.
func (g *Gateway) Login(ctx context.Context, email, password string) (*onboardsdk.Identity, error) {
	if !g.busy.CompareAndSwap(false, true) {
		return nil, ErrOperationInFlight
	}
	defer g.busy.Store(false)

	if !g.limiter.Allow() {
		return nil, ErrThrottled
	}

	data, err := g.api.Login(ctx, email, password)
	if err != nil {
		return nil, g.mapAuthError(err, "login")
	}

	identity := data.Identity()
	if err := g.sessions.Set(ctx, identity, data.Token, data.ExpiresAt(), data.MustChangePassword); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Register creates an account and commits the returned session, mirroring
// the backend's register-then-signed-in behaviour.
func (g *Gateway) Register(ctx context.Context, req onboardsdk.RegisterRequest) (*onboardsdk.Identity, error) {
	if !g.busy.CompareAndSwap(false, true) {
		return nil, ErrOperationInFlight
	}
	defer g.busy.Store(false)

	data, err := g.api.Register(ctx, req)
	if err != nil {
		return nil, g.mapAuthError(err, "register")
	}

	identity := data.Identity()
	if err := g.sessions.Set(ctx, identity, data.Token, data.ExpiresAt(), data.MustChangePassword); err != nil {
		return nil, err
	}
	return &identity, nil
}

// ChangePassword validates locally, then asks the backend to rotate the
// credential. A successful change clears the forced password-change flag and
// nothing else: token and identity stay as they are.
func (g *Gateway) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	if !g.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer g.busy.Store(false)

	token := g.sessions.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	sess := g.api.SessionFromToken(token)
	if err := sess.ChangePassword(ctx, current, newPassword, confirm); err != nil {
		var apiErr *onboardsdk.APIError
		if errors.As(err, &apiErr) {
			if apiErr.IsAuthFailure() || apiErr.StatusCode == http.StatusBadRequest {
				return errors.Join(ErrPasswordRejected, err)
			}
			return errors.Join(ErrServer, err)
		}
		return errors.Join(ErrNetwork, err)
	}

	if err := g.sessions.ClearMustChangePassword(ctx); err != nil {
		return err
	}

	g.logger.Info("password changed")
	return nil
}

// Logout drops the local session. The bearer token is stateless on the
// backend, so there is no server call to make.
func (g *Gateway) Logout(ctx context.Context) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer g.busy.Store(false)

	return g.sessions.Clear(ctx)
}

func (g *Gateway) mapAuthError(err error, op string) error {
	var apiErr *onboardsdk.APIError
	if !errors.As(err, &apiErr) {
		g.logger.Warn("backend unreachable", "op", op, "error", err)
		return errors.Join(ErrNetwork, err)
	}

	if apiErr.IsAuthFailure() || apiErr.StatusCode == http.StatusBadRequest ||
		(apiErr.StatusCode == http.StatusOK && apiErr.Message != "") {
		g.logger.Info("credentials rejected", "op", op, "status", apiErr.StatusCode)
		return errors.Join(ErrInvalidCredentials, err)
	}

	g.logger.Error("backend failure", "op", op, "status", apiErr.StatusCode)
	return errors.Join(ErrServer, err)
}
