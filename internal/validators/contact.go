package validators

import "strings"

// IsEmailShaped checks the minimal structure of an address without
// touching the network; delivery failures are handled downstream.
func IsEmailShaped(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// NormalizePhone strips formatting so phone-based customer dedupe
// matches "(555) 123-4567" with "5551234567".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
