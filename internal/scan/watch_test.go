package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"

	"gametitle/internal/naming"
	"gametitle/internal/testsupport"
)

func TestWatcherReportsNewEntries(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := testsupport.GameTree(t, []string{"Existing"}, nil)
	w, err := NewWatcher(root, DefaultOptions(), naming.Default(), nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	found := make(chan Entry, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(e Entry) { found <- e })
	}()

	for _, name := range []string{"assets", ".hidden", "Solar2"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
	staging := t.TempDir()
	if err := os.Mkdir(filepath.Join(staging, "elliot_quest"), 0o755); err != nil {
		t.Fatalf("mkdir staging: %v", err)
	}
	if err := os.Rename(filepath.Join(staging, "elliot_quest"), filepath.Join(root, "elliot_quest")); err != nil {
		t.Fatalf("rename: %v", err)
	}

	var got []Entry
	timeout := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case e := <-found:
			got = append(got, e)
		case <-timeout:
			t.Fatalf("timed out waiting for entries, got %+v", got)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []Entry{
		{Name: "Solar2", Kind: KindDir, Title: "Solar 2", Found: true},
		{Name: "elliot_quest", Kind: KindDir, Title: "Elliot Quest", Found: true},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Entry{}, "Path")); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	select {
	case e := <-found:
		t.Fatalf("unexpected extra entry %+v", e)
	default:
	}
}

func TestNewWatcherErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), DefaultOptions(), naming.Default(), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}

	file := testsupport.WriteFile(t, "game.sh", "#!/bin/sh\n")
	if _, err := NewWatcher(file, DefaultOptions(), naming.Default(), nil); err == nil {
		t.Fatal("expected error for a file")
	}

	opts := DefaultOptions()
	opts.ResourceDirs = []string{"[bad"}
	if _, err := NewWatcher(t.TempDir(), opts, naming.Default(), nil); err == nil {
		t.Fatal("expected invalid options error")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir(), DefaultOptions(), naming.Default(), nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
