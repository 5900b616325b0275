package scan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Globs for support binaries that sit next to a game's real executable.
var defaultIgnoredBinaries = []string{"xdg-*", "flashplayer", "Data.*", "lib*.so.*", "README*"}

// Extensions of files that are never executables even when marked +x.
var defaultNonBinaryExtensions = []string{
	"dll", "so", "dso", "shlib", "o", "dylib",
	"ini", "xml", "txt",
	"assets", "u", "frag", "vert", "fxg", "xnb", "xsb", "xwb", "xgs",
	"usf", "msf", "asi", "fsb", "fev", "mdd", "lbx", "zmp",
	"as", "cpp", "c", "h", "java",
	"ogg", "mp3", "wav", "spc", "mid", "midi", "rmi",
	"png", "bmp", "gif", "jpg", "jpeg", "svg", "tga", "pcx",
	"pdf",
	"ttf", "crt",
	"dl_", "sc_", "ex_",
}

var defaultResourceDirs = []string{"assets", "data", "*_data", "resources", "icons"}

// Options controls which directory entries are considered.
type Options struct {
	// IgnoredBinaries are filepath.Match globs for file names to skip.
	IgnoredBinaries []string
	// NonBinaryExtensions are skipped, compared case-insensitively and
	// without the dot.
	NonBinaryExtensions []string
	// ResourceDirs are filepath.Match globs for directory names to skip.
	ResourceDirs []string
	// IncludeFiles adds regular files to the listing. Directories are always
	// listed.
	IncludeFiles bool
	// IncludeHidden lists names starting with a dot.
	IncludeHidden bool
}

// DefaultIgnoredBinaries returns a copy of the built-in ignore globs.
func DefaultIgnoredBinaries() []string { return append([]string(nil), defaultIgnoredBinaries...) }

// DefaultNonBinaryExtensions returns a copy of the built-in data extensions.
func DefaultNonBinaryExtensions() []string {
	return append([]string(nil), defaultNonBinaryExtensions...)
}

// DefaultResourceDirs returns a copy of the built-in resource directory globs.
func DefaultResourceDirs() []string { return append([]string(nil), defaultResourceDirs...) }

// DefaultOptions lists directories only, with the built-in filters.
func DefaultOptions() Options {
	return Options{
		IgnoredBinaries:     DefaultIgnoredBinaries(),
		NonBinaryExtensions: DefaultNonBinaryExtensions(),
		ResourceDirs:        DefaultResourceDirs(),
	}
}

// Validate checks that every glob is well formed.
func (o Options) Validate() error {
	for _, pattern := range o.IgnoredBinaries {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("ignored binary glob %q: %w", pattern, err)
		}
	}
	for _, pattern := range o.ResourceDirs {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("resource dir glob %q: %w", pattern, err)
		}
	}
	return nil
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (o Options) skipFile(name string) (bool, string) {
	if matchesAny(o.IgnoredBinaries, name) {
		return true, "ignored binary"
	}
	if dot := strings.LastIndexByte(name, '.'); dot > 0 {
		ext := strings.ToLower(name[dot+1:])
		for _, candidate := range o.NonBinaryExtensions {
			if strings.EqualFold(strings.TrimPrefix(candidate, "."), ext) {
				return true, "non-binary extension"
			}
		}
	}
	return false, ""
}

func (o Options) skipDir(name string) (bool, string) {
	if matchesAny(o.ResourceDirs, strings.ToLower(name)) {
		return true, "resource directory"
	}
	return false, ""
}
