package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func isCombiningDiacritic(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// IsSpace reports whether r is feed whitespace: the Unicode space separators
// plus tab, line breaks, U+2028, U+2029 and the byte order mark. Unlike
// unicode.IsSpace it excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimSpace strips leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Normalize returns the canonical comparison form of text.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := cases.Lower(language.Und).String(text)

	// Casers and transform chains keep state, so each call builds its own.
	stripped, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(isCombiningDiacritic)),
	), lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Words splits already-normalized text on single spaces.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}
