package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"gametitle/internal/naming"
	"gametitle/internal/testsupport"
)

func TestDirListsDirectoriesByDefault(t *testing.T) {
	root := testsupport.GameTree(t,
		[]string{"MarkOfTheNinja", "elliot_quest", "assets", "Game_Data", ".cache", "___"},
		[]string{"start.sh", "README.txt"},
	)

	entries, err := Dir(context.Background(), root, DefaultOptions(), naming.Default(), nil)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}

	want := []Entry{
		{Name: "MarkOfTheNinja", Kind: KindDir, Title: "Mark Of The Ninja", Found: true},
		{Name: "___", Kind: KindDir},
		{Name: "elliot_quest", Kind: KindDir, Title: "Elliot Quest", Found: true},
	}
	if diff := cmp.Diff(want, entries, cmpopts.IgnoreFields(Entry{}, "Path")); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	for _, entry := range entries {
		if entry.Path != filepath.Join(root, entry.Name) {
			t.Errorf("unexpected path %q for %q", entry.Path, entry.Name)
		}
	}
}

func TestDirIncludesFilteredFiles(t *testing.T) {
	root := testsupport.GameTree(t,
		nil,
		[]string{
			"ColorOracle.jar",
			"xdg-open",
			"flashplayer",
			"Data.pak",
			"libSDL2.so.0",
			"README",
			"settings.INI",
			"music.ogg",
			"the12chairs.tar.gz",
		},
	)

	opts := DefaultOptions()
	opts.IncludeFiles = true
	entries, err := Dir(context.Background(), root, opts, naming.Default(), nil)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}

	got := map[string]string{}
	for _, entry := range entries {
		if entry.Kind != KindFile {
			t.Errorf("expected file kind for %q, got %q", entry.Name, entry.Kind)
		}
		got[entry.Name] = entry.Title
	}
	want := map[string]string{
		"ColorOracle.jar":    "Color Oracle",
		"the12chairs.tar.gz": "The 12 Chairs",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestDirHiddenAndSymlinks(t *testing.T) {
	root := testsupport.GameTree(t, []string{".Hidden Game", "RealGame"}, nil)
	if err := os.Symlink(filepath.Join(root, "RealGame"), filepath.Join(root, "LinkedGame")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "BrokenLink")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	opts := DefaultOptions()
	opts.IncludeHidden = true
	entries, err := Dir(context.Background(), root, opts, naming.Default(), nil)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	if diff := cmp.Diff([]string{".Hidden Game", "LinkedGame", "RealGame"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDirErrors(t *testing.T) {
	if _, err := Dir(context.Background(), filepath.Join(t.TempDir(), "missing"), DefaultOptions(), naming.Default(), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}

	opts := DefaultOptions()
	opts.ResourceDirs = []string{"[bad"}
	if _, err := Dir(context.Background(), t.TempDir(), opts, naming.Default(), nil); err == nil {
		t.Fatal("expected error for bad glob")
	}

	root := testsupport.GameTree(t, []string{"Game"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Dir(ctx, root, DefaultOptions(), naming.Default(), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSkipRules(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		name string
		dir  bool
		want bool
	}{
		{"xdg-settings", false, true},
		{"README.md", false, true},
		{"libfoo.so.1", false, true},
		{"game.DLL", false, true},
		{".bashrc", false, false},
		{"game.x86_64", false, false},
		{"Assets", true, true},
		{"Game_Data", true, true},
		{"icons", true, true},
		{"Data Center", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			if tt.dir {
				got, _ = opts.skipDir(tt.name)
			} else {
				got, _ = opts.skipFile(tt.name)
			}
			if got != tt.want {
				t.Fatalf("skip(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
