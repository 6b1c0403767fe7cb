package access

import (
	"log/slog"

	"github.com/onboardhq/onboardhub/internal/portal/session"
)

const (
	loginPath          = "/login"
	changePasswordPath = "/change-password"
)

// Decision is the gate's answer for one navigation: either the path is
// allowed, or the caller should go to RedirectTo instead. An allowed
// navigation may additionally carry ForcePasswordChange, a blocking overlay
// the UI must show over the destination until the password change settles.
type Decision struct {
	Allowed             bool
	RedirectTo          string
	ForcePasswordChange bool
}

func allow() Decision               { return Decision{Allowed: true} }
func redirect(path string) Decision { return Decision{RedirectTo: path} }

// Gate evaluates navigations against the route table and the live session.
// It never mutates the session; it only reads it, so a denied navigation
// has no side effects beyond the returned redirect.
type Gate struct {
	sessions *session.Store
	logger   *slog.Logger
}

func NewGate(sessions *session.Store, logger *slog.Logger) *Gate {
	return &Gate{sessions: sessions, logger: logger}
}

// Evaluate decides whether the current user may visit path. Rules apply in
// order: anonymous-only pages bounce signed-in users home, protected pages
// bounce anonymous users to login, role-restricted pages bounce the wrong
// roles home. A pending forced password change raises the overlay on every
// otherwise-allowed navigation; it is re-checked on every call, so the user
// cannot shed it by navigating away and back.
func (g *Gate) Evaluate(path string) Decision {
	decision := g.base(path)

	if decision.Allowed && g.mustChangePassword() && normalize(path) != changePasswordPath {
		g.logger.Debug("forced password change overlay raised", "path", path)
		decision.ForcePasswordChange = true
	}
	return decision
}

func (g *Gate) base(path string) Decision {
	authed := g.sessions.IsAuthenticated()
	identity := g.sessions.Current()

	req, known := Lookup(path)
	if !known {
		// Unknown paths funnel to login, or home when already signed in.
		if authed && identity != nil {
			return redirect(HomeFor(identity.Role))
		}
		return redirect(loginPath)
	}

	if req.AnonymousOnly {
		if authed && identity != nil {
			return redirect(HomeFor(identity.Role))
		}
		return allow()
	}

	if !authed || identity == nil {
		g.logger.Debug("unauthenticated navigation denied", "path", path)
		return redirect(loginPath)
	}

	if !Allowed(req.Roles, identity) {
		g.logger.Debug("navigation denied for role",
			"path", path,
			"role", identity.Role.String(),
		)
		return redirect(HomeFor(identity.Role))
	}

	return allow()
}

func (g *Gate) mustChangePassword() bool {
	return g.sessions.IsAuthenticated() && g.sessions.MustChangePassword()
}
