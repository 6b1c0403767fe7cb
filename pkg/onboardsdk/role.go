package onboardsdk

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the closed set of portal roles. The wire encoding is the backend
// enum: Admin=1, HR=2, Employee=3. Encoding and decoding both go through the
// JSON methods below so the integer mapping lives in exactly one place.
type Role int

const (
	RoleAdmin    Role = 1
	RoleHR       Role = 2
	RoleEmployee Role = 3
)

// Valid reports whether r is one of the three defined roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleEmployee
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleHR:
		return "hr"
	case RoleEmployee:
		return "employee"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// ParseRole maps a role name to its Role value.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "hr":
		return RoleHR, nil
	case "employee":
		return RoleEmployee, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot encode invalid role tag %d", int(r))
	}
	return json.Marshal(int(r))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var tag int
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("role must be an integer tag: %w", err)
	}

	decoded := Role(tag)
	if !decoded.Valid() {
		return fmt.Errorf("role tag %d outside Admin=1, HR=2, Employee=3", tag)
	}

	*r = decoded
	return nil
}
