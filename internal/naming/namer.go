package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gametitle/internal/camelcase"
)

var (
	// ErrInvalidPattern reports an override or subtitle pattern that does not
	// compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidTables reports configuration values the pipeline cannot use.
	ErrInvalidTables = errors.New("invalid naming tables")
)

// Tables holds everything the pipeline treats as injected configuration.
type Tables struct {
	// Extensions are recognized extensions, lowercase and without the dot.
	Extensions []string
	// WordBoundaryChars start a new word for TitlecaseUp.
	WordBoundaryChars string
	// SubtitlePattern must contain two groups: the digit and the first
	// character of the following word. Empty disables subtitle colons.
	SubtitlePattern string
	// VersionPattern matches are deleted before whitespace normalization.
	// Empty disables version stripping.
	VersionPattern     string
	ShortNameGraphemes int
	// ComposeUnicode NFC-composes names before processing.
	ComposeUnicode bool
	Overrides      []OverrideSpec
	Classifier     camelcase.ClassifierOptions
}

// Namer runs the title pipeline with one fixed set of Tables.
type Namer struct {
	extensions map[string]struct{}
	boundaries string
	subtitle   *regexp.Regexp
	version    *regexp.Regexp
	shortName  int
	compose    bool
	overrides  Overrides
	classifier *camelcase.Classifier
}

// New validates t and compiles its patterns.
func New(t Tables) (*Namer, error) {
	if t.ShortNameGraphemes < 1 {
		return nil, fmt.Errorf("naming: short name threshold %d: %w", t.ShortNameGraphemes, ErrInvalidTables)
	}
	extensions := make(map[string]struct{}, len(t.Extensions))
	for i, ext := range t.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" || strings.Contains(ext, ".") {
			return nil, fmt.Errorf("naming: extension %d %q: %w", i, t.Extensions[i], ErrInvalidTables)
		}
		extensions[ext] = struct{}{}
	}

	var subtitle *regexp.Regexp
	if t.SubtitlePattern != "" {
		re, err := regexp.Compile(t.SubtitlePattern)
		if err != nil {
			return nil, fmt.Errorf("naming: compile subtitle pattern %q: %w: %w", t.SubtitlePattern, ErrInvalidPattern, err)
		}
		if re.NumSubexp() < 2 {
			return nil, fmt.Errorf("naming: subtitle pattern %q needs two groups: %w", t.SubtitlePattern, ErrInvalidPattern)
		}
		subtitle = re
	}

	var version *regexp.Regexp
	if t.VersionPattern != "" {
		re, err := regexp.Compile(t.VersionPattern)
		if err != nil {
			return nil, fmt.Errorf("naming: compile version pattern %q: %w: %w", t.VersionPattern, ErrInvalidPattern, err)
		}
		version = re
	}

	overrides, err := CompileOverrides(t.Overrides)
	if err != nil {
		return nil, err
	}

	return &Namer{
		extensions: extensions,
		boundaries: t.WordBoundaryChars,
		subtitle:   subtitle,
		version:    version,
		shortName:  t.ShortNameGraphemes,
		compose:    t.ComposeUnicode,
		overrides:  overrides,
		classifier: camelcase.NewClassifier(t.Classifier),
	}, nil
}

// MustNew is New for tables known to be valid, such as DefaultTables.
func MustNew(t Tables) *Namer {
	n, err := New(t)
	if err != nil {
		panic(err)
	}
	return n
}

// Overrides returns the compiled override table.
func (n *Namer) Overrides() Overrides {
	return n.overrides
}

// ApplyOverrides runs the override table over s. See Overrides.Apply.
func (n *Namer) ApplyOverrides(s string) (string, bool) {
	return n.overrides.Apply(s)
}

var defaultNamer = MustNew(DefaultTables())

// Default returns the shared Namer built from DefaultTables.
func Default() *Namer {
	return defaultNamer
}

// FilenameToName guesses a title using the default tables.
func FilenameToName(path string) (string, bool) { return defaultNamer.FilenameToName(path) }

// FilenameExtensionless strips recognized extensions using the default tables.
func FilenameExtensionless(path string) string { return defaultNamer.FilenameExtensionless(path) }

// NormalizeWhitespace converts word separators using the default tables.
func NormalizeWhitespace(s string) string { return defaultNamer.NormalizeWhitespace(s) }

// TitlecaseUp capitalizes word starts using the default boundary characters.
func TitlecaseUp(s string) string { return defaultNamer.TitlecaseUp(s) }

// ApplyOverrides applies the built-in override table.
func ApplyOverrides(s string) (string, bool) { return defaultNamer.ApplyOverrides(s) }
