package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern matches the address formats the dashboard accepts
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// MobilePattern allows an optional leading + followed by 7 to 15 digits
	MobilePattern = `^\+?\d{7,15}$`

	// PasswordMinLength applies to new passwords only, stored hashes are exempt
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Mobile *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Mobile: regexp.MustCompile(MobilePattern),
}

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidMobile reports whether s looks like a phone number
func IsValidMobile(s string) bool {
	return CompiledPatterns.Mobile.MatchString(s)
}

// IsValidPassword reports whether a new password meets the minimum length
func IsValidPassword(s string) bool {
	return len(s) >= PasswordMinLength
}
