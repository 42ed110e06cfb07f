package chisel

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for reliable matching: it applies Unicode
// compatibility normalization (NFKC), collapses every whitespace run to a
// single ASCII space, and strips leading and trailing whitespace. Case is
// preserved; callers lower-case separately when they want case-insensitive
// comparison.
func Normalize(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeFold is Normalize plus lower-casing, used when headers and
// headings are matched case-insensitively.
func normalizeFold(s string) string {
	return strings.ToLower(Normalize(s))
}

// lowerRunes lower-cases rune by rune so the result has the same rune count
// as the input. Search code depends on rune offsets staying aligned between
// the folded and original text.
func lowerRunes(s string) string {
	return strings.Map(unicode.ToLower, s)
}
