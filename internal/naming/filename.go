package naming

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// FilenameToName guesses a title from a file or directory name. The second
// result is false when nothing nameable is left, which callers must treat as
// a failed guess rather than an empty title.
func (n *Namer) FilenameToName(path string) (string, bool) {
	name := n.FilenameExtensionless(path)
	if n.compose {
		name = norm.NFC.String(name)
	}

	if n.version != nil {
		name = n.version.ReplaceAllString(name, "")
	}

	name = collapseSpaces(name)
	name = n.NormalizeWhitespace(name)
	if n.subtitle != nil {
		name = n.subtitle.ReplaceAllString(name, DefaultSubtitleReplacement)
	}
	name = n.TitlecaseUp(name)
	name = spaceDigits(name)

	if uniseg.GraphemeClusterCount(name) < n.shortName {
		name = cases.Upper(language.Und).String(name)
	}

	name = collapseSpaces(name)
	name, _ = n.overrides.Apply(name)

	if !hasNameable(name) {
		return "", false
	}
	return name, true
}

// hasNameable reports whether s contains a letter, number, or symbol other
// than U+FFFD.
func hasNameable(s string) bool {
	for _, r := range s {
		if r == unicode.ReplacementChar {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}
