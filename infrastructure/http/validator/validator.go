package validator

import (
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,50}$`)

// ValidateUsername accepts 3-50 characters of letters, digits, dot,
// underscore and dash.
func ValidateUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// ValidatePassword enforces the minimum length for new passwords. Login
// requests skip this check so existing credentials keep working.
func ValidatePassword(password string) bool {
	return len(password) >= 6
}

func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}
