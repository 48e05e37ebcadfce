package validate

import (
	"regexp"
	"strings"
)

var (
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePayment = regexp.MustCompile(`^(yappy|efectivo)$`)
)

// ID validates a simple resource identifier (item/reservation ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Payment validates the allowed payment method enums.
func Payment(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, rePayment.MatchString(s)
}

// Name accepts any non-empty display name up to a sane length.
// Identity fields are free text here; the boutique confirms by phone.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// Phone accepts any non-empty free-text phone up to a sane length.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 30 {
		return "", false
	}
	return s, true
}

// Q normalizes a search term: trims and caps length. Any text is allowed;
// matching is a substring check, never interpolated into SQL.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
