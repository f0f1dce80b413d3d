package utils

import "strings"

// MaskEmail hides all but the first character of the local part.
// "reader@example.com" -> "r***@example.com"
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if len(local) <= 1 {
		return local + "***@" + domain
	}
	return local[:1] + "***@" + domain
}

// MaskSecret keeps only the first visible bytes of a token or code for log output.
func MaskSecret(secret string, visible int) string {
	if visible <= 0 || secret == "" {
		return "***"
	}
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}
	return secret[:visible] + "***"
}
