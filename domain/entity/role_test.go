package entity

import "testing"

func TestParseRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		for _, s := range []string{"user", "admin"} {
			role, err := ParseRole(s)
			if err != nil {
				t.Errorf("ParseRole(%q) failed: %v", s, err)
			}
			if role.String() != s {
				t.Errorf("ParseRole(%q) = %q", s, role)
			}
			if !role.Valid() {
				t.Errorf("ParseRole(%q) should be valid", s)
			}
		}
	})

	t.Run("unknown roles are rejected", func(t *testing.T) {
		for _, s := range []string{"", "superuser", "Admin", "ADMIN", " user"} {
			if _, err := ParseRole(s); err == nil {
				t.Errorf("ParseRole(%q) should fail", s)
			}
		}
	})
}

func TestRoleValid(t *testing.T) {
	if Role("root").Valid() {
		t.Error("Role outside the closed set should not be valid")
	}
	if Role("").Valid() {
		t.Error("Empty role should not be valid")
	}
}
