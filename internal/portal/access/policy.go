// Package access decides what a user may see: role checks, the route
// requirement table, and the navigation gate that turns both into a single
// allow-or-redirect answer per navigation.
package access

import "github.com/onboardhq/onboardhub/pkg/onboardsdk"

// IsAdmin reports whether the identity holds the administrator role.
func IsAdmin(id *onboardsdk.Identity) bool {
	return id != nil && id.Role == onboardsdk.RoleAdmin
}

// IsHR reports whether the identity can act on HR surfaces. Administrators
// count as HR: everything HR can do, an admin can do too.
func IsHR(id *onboardsdk.Identity) bool {
	return id != nil && (id.Role == onboardsdk.RoleHR || id.Role == onboardsdk.RoleAdmin)
}

// IsEmployee reports whether the identity holds exactly the employee role.
// Admins and HR do not pass: the employee self-service pages are scoped to
// the person being onboarded.
func IsEmployee(id *onboardsdk.Identity) bool {
	return id != nil && id.Role == onboardsdk.RoleEmployee
}

// Allowed reports whether the identity satisfies a role list. An empty list
// means any authenticated user. Membership is exact, so a route that wants
// admins as well must list them.
func Allowed(roles []onboardsdk.Role, id *onboardsdk.Identity) bool {
	if id == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if id.Role == role {
			return true
		}
	}
	return false
}

// Satisfies reports whether the identity meets a route requirement:
// anonymous-only routes demand no identity, everything else demands one,
// role-restricted routes additionally demand membership. Pure and total
// over all requirement shapes.
func Satisfies(req Requirement, id *onboardsdk.Identity) bool {
	if req.AnonymousOnly {
		return id == nil
	}
	return Allowed(req.Roles, id)
}

// HomeFor returns the landing path for a role: staff go to the HR
// dashboard, employees to their own.
func HomeFor(role onboardsdk.Role) string {
	if role == onboardsdk.RoleEmployee {
		return "/employee/dashboard"
	}
	return "/dashboard"
}
