package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD-decompose, drop combining marks, recompose: "Büro" -> "Buro".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize is the canonical form every string passes through before
// comparison: diacritics stripped, lowercased, restricted to
// [a-z0-9&-. ] plus single spaces. Idempotent, never fails.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(out)

	b := make([]rune, 0, len(out))
	for _, r := range out {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '&', r == '-', r == '.':
			b = append(b, r)
		case unicode.IsSpace(r):
			b = append(b, ' ')
		}
	}
	return collapseSpaces(string(b))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
