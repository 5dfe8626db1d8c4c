package validation

import (
	"regexp"
	"strings"
)

// Validation rule constants for registration and profile fields
var (
	// EmailPattern matches ordinary lowercase email addresses
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// PasswordMinLength mirrors the minimum enforced on the stored schema
	PasswordMinLength = 8

	NameMinLength = 2
	NameMaxLength = 100

	// Graduation years outside this window are rejected as typos
	GraduationYearMin = 1950
	GraduationYearMax = 2100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// NormalizeEmail lowercases and trims an address so lookups and the unique
// index treat case variants of the same mailbox as one account
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the address matches the email pattern
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ValidPassword reports whether the password meets the minimum length
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// ValidName reports whether the display name has a sane length
func ValidName(name string) bool {
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}

// ValidGraduationYear reports whether the year is inside the accepted window
func ValidGraduationYear(year int) bool {
	return year >= GraduationYearMin && year <= GraduationYearMax
}
