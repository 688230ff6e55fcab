// Package validation holds small input checks shared by the service layer.
package validation

import (
	"net/mail"
	"strings"

	"kehilla/internal/models"
)

const maxContentLength = 10000

// ValidCategory reports whether cat names one of the known post categories.
func ValidCategory(cat string) bool {
	for _, c := range models.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidEmail reports whether addr parses as a plain RFC 5322 address.
func ValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ContentLength rejects empty or absurdly long free-text bodies.
func ContentLength(content string) bool {
	n := len(strings.TrimSpace(content))
	return n > 0 && n <= maxContentLength
}
