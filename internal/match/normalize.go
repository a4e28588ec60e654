package match

import (
	"strings"
)

// NormalizeIdent lower-cases an identifier and drops separators ('_', '-',
// '.', ' ' and '\'), so "Acme_UserBundle", "acme-user-bundle" and
// "AcmeUserBundle" normalize identically.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ', '\\':
		return true
	default:
		return false
	}
}
