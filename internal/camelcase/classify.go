package camelcase

import "unicode"

// CharClass is the role a character plays when looking for word boundaries.
type CharClass uint8

const (
	// Start is the class of the position before the first character.
	Start CharClass = iota
	Uppercase
	Lowercase
	// Titlecase covers digraphs such as U+01C5 that combine an uppercase and
	// a lowercase letter in one code point.
	Titlecase
	Ampersand
	Apostrophe
	Numeric
	// NumberSeparator characters appear inside version numbers and dates and
	// never force a break.
	NumberSeparator
	// StartPunctuation should not be followed by a break, e.g. "(" or "#".
	StartPunctuation
	// EndPunctuation should not be preceded by a break, e.g. ")" or "%".
	EndPunctuation
	Whitespace
	Other
)

var charClassNames = [...]string{
	Start:            "start",
	Uppercase:        "uppercase",
	Lowercase:        "lowercase",
	Titlecase:        "titlecase",
	Ampersand:        "ampersand",
	Apostrophe:       "apostrophe",
	Numeric:          "numeric",
	NumberSeparator:  "number_separator",
	StartPunctuation: "start_punctuation",
	EndPunctuation:   "end_punctuation",
	Whitespace:       "whitespace",
	Other:            "other",
}

func (c CharClass) String() string {
	if int(c) < len(charClassNames) {
		return charClassNames[c]
	}
	return "unknown"
}

// Default code point sets. Callers may replace the first three through
// ClassifierOptions.
var (
	defaultAmpersands = []rune{
		'\u0026',     // AMPERSAND
		'\uFE60',     // SMALL AMPERSAND
		'\uFF06',     // FULLWIDTH AMPERSAND
		'\U0001F674', // HEAVY AMPERSAND ORNAMENT
	}

	// U+2019 is the preferred apostrophe in Unicode text.
	defaultApostrophes = []rune{'\u0027', '\u2019', '\uFF07'}

	// Bidi class CS (common number separators) plus ES (plus and minus forms).
	defaultNumberSeparators = []rune{
		'\u002C', '\u002E', '\u002F', '\u003A', '\u00A0', '\u060C', '\u066C',
		'\u202F', '\u2044', '\uFE50', '\uFE52', '\uFE55', '\uFF0C', '\uFF0E',
		'\uFF0F', '\uFF1A',
		'\u002B', '\u002D', '\u207A', '\u207B', '\u208A', '\u208B', '\u2212',
		'\uFB29', '\uFE62', '\uFE63', '\uFF0B', '\uFF0D',
	}

	// Terminators that belong to the word after them. Currency symbols not
	// listed in endPunctuationRunes are also treated this way.
	startPunctuationRunes = []rune{
		'\u0023', '\u0024', '\u003C', '\u00A1', '\u00BF', '\u2E18', '\uFE5F',
		'\uFF03', '\uFF04', '\uFF1C', '\U0001F679',
	}

	// Terminators that belong to the word before them.
	endPunctuationRunes = []rune{
		'\u0021', '\u0025', '\u003B', '\u003E', '\u003F', '\u00A2', '\u00B0',
		'\u2026', '\u2030', '\u2031', '\u203C', '\u203D', '\u2047', '\u2048',
		'\u2049', '\u2762', '\uFE54', '\uFE56', '\uFE57', '\uFE6A', '\uFF01',
		'\uFF05', '\uFF1B', '\uFF1E', '\uFF1F', '\uFFE0',
	}
)

// ClassifierOptions overrides the customizable code point sets. A nil or
// empty slice keeps the default set.
type ClassifierOptions struct {
	Ampersands       []rune
	Apostrophes      []rune
	NumberSeparators []rune
}

// Classifier maps characters to their CharClass.
type Classifier struct {
	ampersands       map[rune]struct{}
	apostrophes      map[rune]struct{}
	numberSeparators map[rune]struct{}
	startPunct       map[rune]struct{}
	endPunct         map[rune]struct{}
}

var defaultClassifier = NewClassifier(ClassifierOptions{})

// DefaultClassifier returns the shared classifier built from the default sets.
func DefaultClassifier() *Classifier {
	return defaultClassifier
}

// NewClassifier builds a classifier from opts.
func NewClassifier(opts ClassifierOptions) *Classifier {
	return &Classifier{
		ampersands:       runeSet(opts.Ampersands, defaultAmpersands),
		apostrophes:      runeSet(opts.Apostrophes, defaultApostrophes),
		numberSeparators: runeSet(opts.NumberSeparators, defaultNumberSeparators),
		startPunct:       runeSet(nil, startPunctuationRunes),
		endPunct:         runeSet(nil, endPunctuationRunes),
	}
}

func runeSet(values, fallback []rune) map[rune]struct{} {
	if len(values) == 0 {
		values = fallback
	}
	set := make(map[rune]struct{}, len(values))
	for _, r := range values {
		set[r] = struct{}{}
	}
	return set
}

// Classify returns the class of r. The checks run in a fixed precedence:
// whitespace wins over every set below it, the explicit sets win over the
// Unicode general categories, and letters come last.
func (c *Classifier) Classify(r rune) CharClass {
	if c == nil {
		c = defaultClassifier
	}
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case has(c.ampersands, r):
		return Ampersand
	case has(c.apostrophes, r):
		return Apostrophe
	case has(c.numberSeparators, r):
		return NumberSeparator
	case has(c.endPunct, r):
		return EndPunctuation
	case has(c.startPunct, r), unicode.Is(unicode.Sc, r):
		return StartPunctuation
	case unicode.Is(unicode.Ps, r):
		return StartPunctuation
	case unicode.Is(unicode.Pe, r):
		return EndPunctuation
	case unicode.IsNumber(r):
		return Numeric
	case unicode.IsUpper(r), unicode.Is(unicode.Other_Uppercase, r):
		return Uppercase
	case unicode.IsLower(r), unicode.Is(unicode.Other_Lowercase, r):
		return Lowercase
	case unicode.IsTitle(r):
		return Titlecase
	default:
		return Other
	}
}

// Classify classifies r with the default classifier.
func Classify(r rune) CharClass {
	return defaultClassifier.Classify(r)
}

func has(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}
