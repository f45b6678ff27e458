package utils

import (
	"regexp"
	"strings"
)

// Entities written for the characters we escape. A leading "&" that already
// begins one of these entities is left alone so that sanitizing twice yields
// the same result as sanitizing once.
var knownEntities = []string{"&amp;", "&lt;", "&gt;", "&#39;", "&quot;", "&#96;"}

// Sanitize trims surrounding whitespace and HTML-escapes the characters
// & < > ' " and backtick before a value is persisted or echoed back.
// It is a total function: any input, including the empty string, yields a
// safe string and never an error.
func Sanitize(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		switch c := trimmed[i]; c {
		case '&':
			if startsEntity(trimmed[i:]) {
				b.WriteByte(c)
			} else {
				b.WriteString("&amp;")
			}
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\'':
			b.WriteString("&#39;")
		case '"':
			b.WriteString("&quot;")
		case '`':
			b.WriteString("&#96;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func startsEntity(s string) bool {
	for _, entity := range knownEntities {
		if strings.HasPrefix(s, entity) {
			return true
		}
	}
	return false
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailPattern is a permissive single-pass syntactic check, not full RFC
// validation: something before the @, something after it, and a dot in the
// domain part. Intentionally lax.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the trimmed input looks like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
