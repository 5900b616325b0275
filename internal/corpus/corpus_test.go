package corpus

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gametitle/internal/testsupport"
)

func TestParseOrdersAndDedupes(t *testing.T) {
	doc := `{
		"zeta": {"ideal": "Zeta", "acceptable": ["Zeta", "ZETA", " Zeta "]},
		"alpha": {"ideal": "", "acceptable": ["Alpha"]},
		"mid": {"ideal": "Mid", "acceptable": ["Middle"], "MUST_AUDIT": true}
	}`
	entries, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Entry{
		{Filename: "alpha", Acceptable: []string{"Alpha"}},
		{Filename: "mid", Acceptable: []string{"Mid", "Middle"}, MustAudit: true},
		{Filename: "zeta", Acceptable: []string{"Zeta", "ZETA"}},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{}`)); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
	if _, err := Parse(strings.NewReader(`{"x": {"ideal": "", "acceptable": []}}`)); err == nil {
		t.Fatal("expected error for entry without titles")
	}
	if _, err := Parse(strings.NewReader(`{"x": {"ideal": "X", "bogus": 1}}`)); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if _, err := Parse(strings.NewReader(`[`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestBuiltinCorpus(t *testing.T) {
	entries, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if len(entries) < 90 {
		t.Fatalf("expected the full corpus, got %d entries", len(entries))
	}
	for _, entry := range entries {
		if entry.MustAudit {
			t.Errorf("builtin entry %q is unaudited", entry.Filename)
		}
	}
}

func TestLoadFileAndDefault(t *testing.T) {
	path := testsupport.WriteFile(t, "fixtures.json", `{"FooBar.zip": {"ideal": "Foo Bar", "acceptable": ["Foo Bar"]}}`)
	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 || entries[0].Ideal() != "Foo Bar" {
		t.Fatalf("unexpected entries %+v", entries)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	builtin, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if len(builtin) < 90 {
		t.Fatalf("expected builtin corpus, got %d", len(builtin))
	}
}

func TestMergeKeepsAuditedEntries(t *testing.T) {
	existing := map[string]Fixture{
		"audited":   {Ideal: "Audited", Acceptable: []string{"Audited"}},
		"unaudited": NewFixture("Old Guess"),
	}
	updates := map[string]Fixture{
		"audited":   NewFixture("Wrong"),
		"unaudited": NewFixture("New Guess"),
		"fresh":     NewFixture("Fresh"),
	}
	got := Merge(existing, updates)
	want := map[string]Fixture{
		"audited":   {Ideal: "Audited", Acceptable: []string{"Audited"}},
		"unaudited": NewFixture("New Guess"),
		"fresh":     NewFixture("Fresh"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	if merged := Merge(nil, updates); len(merged) != 3 {
		t.Fatalf("expected 3 entries from nil base, got %d", len(merged))
	}
}

func TestFixturesRoundTripThroughParse(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFixtures(&buf, map[string]Fixture{
		"Don't&Starve": {Ideal: "Don't & Starve", Acceptable: []string{"Don't & Starve"}},
	})
	if err != nil {
		t.Fatalf("WriteFixtures: %v", err)
	}
	if !strings.Contains(buf.String(), `"Don't&Starve"`) {
		t.Fatalf("expected unescaped output, got %s", buf.String())
	}

	fixtures, err := ReadFixtures(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadFixtures: %v", err)
	}
	if fixtures["Don't&Starve"].Ideal != "Don't & Starve" {
		t.Fatalf("unexpected fixtures %+v", fixtures)
	}
}
