package validators

import (
	"net/mail"
	"strings"
)

// NormalizeEmail is the canonical form used as the lookup key for users,
// clientes and leads.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail reports whether email is a bare address ("a@b.c"), without display
// name or angle brackets.
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}
