package scan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Kind distinguishes directories from files in a listing.
type Kind string

const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
)

// Guesser produces a title for a file name.
type Guesser interface {
	FilenameToName(path string) (string, bool)
}

// Entry is one listed directory entry and its guessed title.
type Entry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Kind  Kind   `json:"kind"`
	Title string `json:"title,omitempty"`
	// Found is false when no title could be inferred.
	Found bool `json:"found"`
}

// Dir lists the immediate children of dir that pass opts and guesses a title
// for each. Entries come back sorted by name. A nil logger discards output.
func Dir(ctx context.Context, dir string, opts Options, g Guesser, logger *slog.Logger) ([]Entry, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry, ok := inspect(dir, de.Name(), de.Type(), opts, g, logger); ok {
			entries = append(entries, entry)
		}
	}

	// os.ReadDir already sorts by name.
	logger.Info("directory scanned",
		slog.String("dir", dir),
		slog.Int("entries", len(entries)),
	)
	return entries, nil
}

// inspect filters one directory entry and guesses its title. ok is false
// when the entry is not listed.
func inspect(dir, name string, mode fs.FileMode, opts Options, g Guesser, logger *slog.Logger) (Entry, bool) {
	if name == "" || (!opts.IncludeHidden && name[0] == '.') {
		return Entry{}, false
	}

	path := filepath.Join(dir, name)
	kind, err := entryKind(mode, path)
	if err != nil {
		logger.Warn("skipping unreadable entry",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return Entry{}, false
	}

	var skip bool
	var reason string
	switch kind {
	case KindDir:
		skip, reason = opts.skipDir(name)
	case KindFile:
		if !opts.IncludeFiles {
			return Entry{}, false
		}
		skip, reason = opts.skipFile(name)
	default:
		return Entry{}, false
	}
	if skip {
		logger.Debug("entry filtered", slog.String("name", name), slog.String("reason", reason))
		return Entry{}, false
	}

	title, found := g.FilenameToName(name)
	if found {
		logger.Debug("title guessed", slog.String("name", name), slog.String("title", title))
	} else {
		logger.Debug("no title inferred", slog.String("name", name))
	}
	return Entry{Name: name, Path: path, Kind: kind, Title: title, Found: found}, true
}

// entryKind resolves symlinks so a link to a game directory is listed as a
// directory.
func entryKind(mode fs.FileMode, path string) (Kind, error) {
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		mode = info.Mode().Type()
	}
	switch {
	case mode.IsDir():
		return KindDir, nil
	case mode.IsRegular():
		return KindFile, nil
	default:
		return "", nil
	}
}
