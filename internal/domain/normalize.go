package domain

import "strings"

// NormalizeEmail prepares an email address for storage and uniqueness
// comparison: trims whitespace and lowercases. No RFC validation here;
// input validation owns format checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeStaffNumber uppercases and trims an employee/application number
// so that tie-breaking and uniqueness checks are case-insensitive.
func NormalizeStaffNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}
