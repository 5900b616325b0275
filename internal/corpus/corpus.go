package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

//go:embed filenames.json
var builtinFixtures []byte

// ErrEmptyCorpus is returned when a fixture holds no entries.
var ErrEmptyCorpus = errors.New("corpus is empty")

// Fixture is the on-disk form of one entry.
type Fixture struct {
	Ideal      string   `json:"ideal"`
	Acceptable []string `json:"acceptable"`
	MustAudit  bool     `json:"MUST_AUDIT,omitempty"`
}

// NewFixture returns an unaudited fixture whose only acceptable title is
// guess.
func NewFixture(guess string) Fixture {
	return Fixture{Ideal: guess, Acceptable: []string{guess}, MustAudit: true}
}

// Entry is one file name and its acceptable titles, best first.
type Entry struct {
	Filename   string
	Acceptable []string
	MustAudit  bool
}

// Ideal returns the preferred title.
func (e Entry) Ideal() string {
	if len(e.Acceptable) == 0 {
		return ""
	}
	return e.Acceptable[0]
}

// Parse decodes a fixture document into entries sorted by file name.
func Parse(r io.Reader) ([]Entry, error) {
	var fixtures map[string]Fixture
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if len(fixtures) == 0 {
		return nil, ErrEmptyCorpus
	}

	entries := make([]Entry, 0, len(fixtures))
	for name, fx := range fixtures {
		acceptable := make([]string, 0, len(fx.Acceptable)+1)
		if ideal := strings.TrimSpace(fx.Ideal); ideal != "" {
			acceptable = append(acceptable, ideal)
		}
		for _, title := range fx.Acceptable {
			if title = strings.TrimSpace(title); title != "" && !slices.Contains(acceptable, title) {
				acceptable = append(acceptable, title)
			}
		}
		if len(acceptable) == 0 {
			return nil, fmt.Errorf("corpus entry %q: no acceptable titles", name)
		}
		entries = append(entries, Entry{Filename: name, Acceptable: acceptable, MustAudit: fx.MustAudit})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Filename, b.Filename) })
	return entries, nil
}

// Load reads a fixture file. An empty path loads the built-in corpus.
func Load(path string) ([]Entry, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Builtin returns the corpus shipped with the binary.
func Builtin() ([]Entry, error) {
	return Parse(bytes.NewReader(builtinFixtures))
}

// ReadFixtures decodes a fixture document without flattening it.
func ReadFixtures(r io.Reader) (map[string]Fixture, error) {
	fixtures := map[string]Fixture{}
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return fixtures, nil
}

// WriteFixtures encodes fixtures as indented JSON with sorted keys.
func WriteFixtures(w io.Writer, fixtures map[string]Fixture) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(fixtures)
}

// Merge overlays updates onto existing. Entries already audited (MustAudit
// false) are kept; entries still flagged for audit are replaced. existing is
// modified and returned.
func Merge(existing, updates map[string]Fixture) map[string]Fixture {
	if existing == nil {
		existing = make(map[string]Fixture, len(updates))
	}
	for name, fx := range updates {
		if current, ok := existing[name]; ok && !current.MustAudit {
			continue
		}
		existing[name] = fx
	}
	return existing
}
