package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const nbsp = '\u00A0'

// Normalize canonicalizes raw question text for comparison.
// NFKC, lower case, punctuation and symbols become spaces, whitespace runs collapse.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	lowered := strings.ToLower(norm.NFKC.String(raw))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r == nbsp:
			b.WriteRune(' ')
		case isWordRune(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// isWordRune matches letters, numbers and the underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
