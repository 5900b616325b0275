package naming

import (
	"path/filepath"
	"strings"
)

// FilenameExtensionless returns the last path component of path with every
// trailing recognized extension removed, so "game.tar.gz" becomes "game".
// Stripping stops at the first unrecognized extension. A leading dot never
// starts an extension.
func (n *Namer) FilenameExtensionless(path string) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}

	for {
		dot := strings.LastIndexByte(name, '.')
		if dot <= 0 {
			return name
		}
		if _, ok := n.extensions[strings.ToLower(name[dot+1:])]; !ok {
			return name
		}
		name = name[:dot]
	}
}
