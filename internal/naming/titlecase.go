package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitlecaseUp uppercases the first character of the string and every
// character that follows a word boundary character. Nothing is ever
// lowercased, so "ScummVM" and "FTL" come back unchanged.
func (n *Namer) TitlecaseUp(s string) string {
	var (
		b     strings.Builder
		upper cases.Caser
		init  bool
	)
	b.Grow(len(s))

	atBoundary := true
	for _, r := range s {
		switch {
		case !atBoundary:
			b.WriteRune(r)
		case r < utf8.RuneSelf:
			b.WriteRune(unicode.ToUpper(r))
		default:
			// Casers carry state and are not safe to share across goroutines.
			if !init {
				upper = cases.Upper(language.Und)
				init = true
			}
			b.WriteString(upper.String(string(r)))
		}
		atBoundary = strings.ContainsRune(n.boundaries, r)
	}
	return b.String()
}

// spaceDigits inserts a space between a letter and a following ASCII digit.
func spaceDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	lastWasLetter := false
	for _, r := range s {
		if lastWasLetter && r >= '0' && r <= '9' {
			b.WriteByte(' ')
		}
		lastWasLetter = unicode.IsLetter(r)
		b.WriteRune(r)
	}
	return b.String()
}
