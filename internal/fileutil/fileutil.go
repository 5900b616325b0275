// Package fileutil holds small file helpers shared by the CLI and config
// packages.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic creates path's directory, streams write into a temporary
// file beside path, and renames it into place. On any error the temporary
// file is removed and path is left untouched.
func WriteFileAtomic(path string, mode os.FileMode, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	out, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := out.Name()
	defer func() {
		_ = os.Remove(tmp)
	}()

	if err := write(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Chmod(mode); err != nil {
		_ = out.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// WriteStringAtomic is WriteFileAtomic for in-memory content.
func WriteStringAtomic(path string, mode os.FileMode, content string) error {
	return WriteFileAtomic(path, mode, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
}
