package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// ToSlash rewrites backslash separators to forward slashes regardless of the
// host OS, so configuration written on one platform resolves the same on another.
func ToSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// TrimSeparators strips any trailing '/' and '\' from s.
func TrimSeparators(s string) string {
	return strings.TrimRight(s, `/\`)
}

// SplitReference splits "@Name/rest" into ("Name", "/rest", true).
// A reference without a slash yields the whole remainder as the name and an
// empty rest. Strings not starting with '@' return ok=false.
func SplitReference(s string) (name, rest string, ok bool) {
	if !strings.HasPrefix(s, "@") {
		return "", "", false
	}

	s = s[1:]
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i:], true
	}

	return s, "", true
}
