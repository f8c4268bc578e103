package zkembed

import "strings"

// DefaultConstPrefix is used when the requested prefix contains no ASCII
// alphanumeric character at all.
const DefaultConstPrefix = "PROGRAM"

// SanitizeIdent maps a free-form string onto an identifier usable in the
// names of the generated constants: ASCII alphanumerics are uppercased and
// every other rune becomes an underscore. An input without a single
// alphanumeric (empty, punctuation-only, non-ASCII) yields
// DefaultConstPrefix so the emitted names are never malformed.
func SanitizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	hasAlnum := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
			hasAlnum = true
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			hasAlnum = true
		default:
			b.WriteByte('_')
		}
	}
	if !hasAlnum {
		return DefaultConstPrefix
	}
	return b.String()
}
