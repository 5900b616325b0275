package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"gametitle/internal/fileutil"
	"gametitle/internal/naming"
)

//go:embed sample_config.toml
var sampleConfig string

// Naming contains the title pipeline tables.
type Naming struct {
	Extensions         []string `toml:"extensions"`
	WordBoundaryChars  string   `toml:"word_boundary_chars"`
	SubtitlePattern    string   `toml:"subtitle_pattern"`
	StripVersions      bool     `toml:"strip_versions"`
	VersionPattern     string   `toml:"version_pattern"`
	ShortNameGraphemes int      `toml:"short_name_graphemes"`
	ComposeUnicode     bool     `toml:"compose_unicode"`
	// OverridesMode is "replace", "append", or "none". It only matters when
	// [[overrides]] entries are present, except for "none".
	OverridesMode string `toml:"overrides_mode"`
}

// Classifier replaces the tokenizer's customizable code point sets. Each
// string lists the code points to use; empty keeps the built-in set.
type Classifier struct {
	Ampersands       string `toml:"ampersands"`
	Apostrophes      string `toml:"apostrophes"`
	NumberSeparators string `toml:"number_separators"`
}

// Scan contains directory scan filters.
type Scan struct {
	IgnoredBinaries     []string `toml:"ignored_binaries"`
	NonBinaryExtensions []string `toml:"non_binary_extensions"`
	ResourceDirs        []string `toml:"resource_dirs"`
	IncludeFiles        bool     `toml:"include_files"`
}

// Corpus points at the accuracy fixture. An empty path uses the built-in one.
type Corpus struct {
	Path string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File receives a copy of every record when set.
	File string `toml:"file"`
}

// Config encapsulates all configuration values for gametitle.
type Config struct {
	Naming     Naming                `toml:"naming"`
	Classifier Classifier            `toml:"classifier"`
	Overrides  []naming.OverrideSpec `toml:"overrides"`
	Scan       Scan                  `toml:"scan"`
	Corpus     Corpus                `toml:"corpus"`
	Logging    Logging               `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; the defaults are returned with exists set to false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{defaultPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath resolves "~" and relative paths the same way config values are
// resolved.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := fileutil.WriteStringAtomic(path, 0o644, sampleConfig); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// SampleConfig returns the commented sample configuration.
func SampleConfig() string {
	return sampleConfig
}
