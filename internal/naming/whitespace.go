package naming

import (
	"regexp"
	"strings"
)

var (
	underscoreRunRE = regexp.MustCompile(`[\s_]+`)
	dashRunRE       = regexp.MustCompile(`[\s-]+`)
)

// NormalizeWhitespace turns word separators into single spaces. When the
// name contains underscores or dashes, whichever is more common becomes a
// space and the other is kept, so "X-Com_Collection" keeps its dash. A tie
// keeps the dashes. Names with neither are split with the camelcase
// tokenizer.
//
// Tokens such as "x86_64" are split by the underscore rule; the count is the
// only signal used.
func (n *Namer) NormalizeWhitespace(s string) string {
	underscores := strings.Count(s, "_")
	dashes := strings.Count(s, "-")

	switch {
	case underscores == 0 && dashes == 0:
		return n.classifier.ToSpaces(s)
	case underscores >= dashes:
		return underscoreRunRE.ReplaceAllString(s, " ")
	default:
		return dashRunRE.ReplaceAllString(s, " ")
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
