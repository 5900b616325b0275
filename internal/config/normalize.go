package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeNaming()
	c.normalizeScan()
	if err := c.normalizeCorpus(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeNaming() {
	c.Naming.Extensions = normalizeExtensions(c.Naming.Extensions)
	c.Naming.SubtitlePattern = strings.TrimSpace(c.Naming.SubtitlePattern)
	c.Naming.VersionPattern = strings.TrimSpace(c.Naming.VersionPattern)
	c.Naming.OverridesMode = strings.ToLower(strings.TrimSpace(c.Naming.OverridesMode))
	if c.Naming.OverridesMode == "" {
		c.Naming.OverridesMode = defaultOverrideSet
	}
	for i := range c.Overrides {
		c.Overrides[i].Pattern = strings.TrimSpace(c.Overrides[i].Pattern)
	}
}

func (c *Config) normalizeScan() {
	c.Scan.NonBinaryExtensions = normalizeExtensions(c.Scan.NonBinaryExtensions)
	c.Scan.IgnoredBinaries = trimList(c.Scan.IgnoredBinaries)
	c.Scan.ResourceDirs = trimList(c.Scan.ResourceDirs)
	for i, dir := range c.Scan.ResourceDirs {
		c.Scan.ResourceDirs[i] = strings.ToLower(dir)
	}
}

func (c *Config) normalizeCorpus() error {
	path := strings.TrimSpace(c.Corpus.Path)
	if path == "" {
		c.Corpus.Path = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("corpus.path: %w", err)
	}
	c.Corpus.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv(logLevelEnv); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

// normalizeExtensions lowercases, strips leading dots, and drops duplicates
// while keeping the first occurrence. Blank entries are kept so Validate can
// report them.
func normalizeExtensions(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		ext := strings.ToLower(strings.TrimLeft(strings.TrimSpace(value), "."))
		if ext != "" && slices.Contains(out, ext) {
			continue
		}
		out = append(out, ext)
	}
	return out
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
