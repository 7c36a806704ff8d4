package validator

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "alice", "a.b-c_d", "User123", strings.Repeat("a", 50)}
	for _, u := range valid {
		if !ValidateUsername(u) {
			t.Errorf("Username %q should be valid", u)
		}
	}

	invalid := []string{"", "ab", strings.Repeat("a", 51), "has space", "semi;colon", "uni©ode"}
	for _, u := range invalid {
		if ValidateUsername(u) {
			t.Errorf("Username %q should be invalid", u)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("short") {
		t.Error("Password under 6 characters should be invalid")
	}
	if !ValidatePassword("secret") {
		t.Error("Six character password should be valid")
	}
}

func TestValidateRequired(t *testing.T) {
	if ValidateRequired("   ") {
		t.Error("Whitespace-only value should not satisfy required")
	}
	if !ValidateRequired("x") {
		t.Error("Non-empty value should satisfy required")
	}
}
