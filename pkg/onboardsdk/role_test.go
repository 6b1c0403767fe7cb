package onboardsdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleWireMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role Role
		tag  string
		name string
	}{
		{RoleAdmin, "1", "admin"},
		{RoleHR, "2", "hr"},
		{RoleEmployee, "3", "employee"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := json.Marshal(tc.role)
			require.NoError(t, err)
			require.Equal(t, tc.tag, string(encoded))

			var decoded Role
			require.NoError(t, json.Unmarshal([]byte(tc.tag), &decoded))
			require.Equal(t, tc.role, decoded)
			require.Equal(t, tc.name, decoded.String())
		})
	}
}

func TestRoleDecodeRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	// 0 and 2-shifted tags come from a legacy route table variant; the
	// canonical mapping starts at Admin=1 and anything else is an error.
	for _, raw := range []string{"0", "4", "-1", "99", `"admin"`} {
		var r Role
		err := json.Unmarshal([]byte(raw), &r)
		require.Error(t, err, "tag %s", raw)
	}
}

func TestRoleEncodeRejectsInvalid(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(Role(0))
	require.Error(t, err)

	_, err = json.Marshal(Role(7))
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Role{
		"admin":      RoleAdmin,
		"HR":         RoleHR,
		" Employee ": RoleEmployee,
	} {
		got, err := ParseRole(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseRole("manager")
	require.Error(t, err)
}
