package access

import (
	"strings"

	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
)

// Requirement is what a route demands of the visitor. The zero value means
// "any authenticated user".
type Requirement struct {
	// AnonymousOnly marks the login and register pages: signed-in users
	// are bounced to their landing page instead.
	AnonymousOnly bool

	// Roles restricts the route to the listed roles. Empty means any
	// authenticated user.
	Roles []onboardsdk.Role
}

type route struct {
	pattern     string
	requirement Requirement
}

var (
	anyStaff = []onboardsdk.Role{onboardsdk.RoleAdmin, onboardsdk.RoleHR}
	employee = []onboardsdk.Role{onboardsdk.RoleEmployee}
)

// Patterns use :name for single-segment parameters. Order matters only for
// readability; matching picks the first hit, and literal segments are laid
// out before parameter ones where they could collide.
var routes = []route{
	{"/login", Requirement{AnonymousOnly: true}},
	{"/register", Requirement{AnonymousOnly: true}},

	{"/dashboard", Requirement{Roles: anyStaff}},
	{"/employees", Requirement{Roles: anyStaff}},
	{"/employees/new", Requirement{Roles: anyStaff}},
	{"/employees/:id", Requirement{Roles: anyStaff}},
	{"/employees/:id/edit", Requirement{Roles: anyStaff}},
	{"/task-templates", Requirement{Roles: anyStaff}},
	{"/overdue-tasks", Requirement{Roles: anyStaff}},
	{"/reports", Requirement{Roles: anyStaff}},
	{"/admin/users", Requirement{Roles: anyStaff}},
	{"/admin/settings", Requirement{Roles: anyStaff}},
	{"/admin/activity-logs", Requirement{Roles: anyStaff}},

	{"/my-tasks", Requirement{Roles: employee}},
	{"/my-documents", Requirement{Roles: employee}},
	{"/employee/dashboard", Requirement{Roles: employee}},
	{"/employee/summary", Requirement{Roles: employee}},

	{"/tasks", Requirement{}},
	{"/tasks/:id", Requirement{}},
	{"/documents", Requirement{}},
	{"/pdf-viewer", Requirement{}},
	{"/pdf-viewer/:fileName", Requirement{}},
	{"/change-password", Requirement{}},
}

// RouteInfo is one entry of the navigable route table.
type RouteInfo struct {
	Pattern     string
	Requirement Requirement
}

// Table returns a copy of the route table in declaration order.
func Table() []RouteInfo {
	out := make([]RouteInfo, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteInfo{Pattern: r.pattern, Requirement: r.requirement})
	}
	return out
}

// Lookup resolves a path to its requirement. The second return is false for
// paths outside the table; the gate sends those to the login page, matching
// the catch-all redirect of the reference UI.
func Lookup(path string) (Requirement, bool) {
	path = normalize(path)
	for _, r := range routes {
		if matches(r.pattern, path) {
			return r.requirement, true
		}
	}
	return Requirement{}, false
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func matches(pattern, path string) bool {
	p := strings.Split(pattern, "/")
	s := strings.Split(path, "/")
	if len(p) != len(s) {
		return false
	}
	for i := range p {
		if strings.HasPrefix(p[i], ":") {
			if s[i] == "" {
				return false
			}
			continue
		}
		if p[i] != s[i] {
			return false
		}
	}
	return true
}
