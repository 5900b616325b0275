package config

import (
	"gametitle/internal/camelcase"
	"gametitle/internal/naming"
	"gametitle/internal/scan"
)

// NamingTables converts the naming sections into naming.Tables.
func (c *Config) NamingTables() naming.Tables {
	tables := naming.Tables{
		Extensions:         append([]string(nil), c.Naming.Extensions...),
		WordBoundaryChars:  c.Naming.WordBoundaryChars,
		SubtitlePattern:    c.Naming.SubtitlePattern,
		ShortNameGraphemes: c.Naming.ShortNameGraphemes,
		ComposeUnicode:     c.Naming.ComposeUnicode,
		Overrides:          c.overrideSpecs(),
		Classifier: camelcase.ClassifierOptions{
			Ampersands:       []rune(c.Classifier.Ampersands),
			Apostrophes:      []rune(c.Classifier.Apostrophes),
			NumberSeparators: []rune(c.Classifier.NumberSeparators),
		},
	}
	if c.Naming.StripVersions {
		tables.VersionPattern = c.Naming.VersionPattern
	}
	return tables
}

func (c *Config) overrideSpecs() []naming.OverrideSpec {
	switch {
	case c.Naming.OverridesMode == overridesNone:
		return nil
	case len(c.Overrides) == 0:
		return naming.DefaultOverrides()
	case c.Naming.OverridesMode == overridesAppend:
		return append(naming.DefaultOverrides(), c.Overrides...)
	default:
		return append([]naming.OverrideSpec(nil), c.Overrides...)
	}
}

// ScanOptions converts the scan section into scan.Options.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{
		IgnoredBinaries:     append([]string(nil), c.Scan.IgnoredBinaries...),
		NonBinaryExtensions: append([]string(nil), c.Scan.NonBinaryExtensions...),
		ResourceDirs:        append([]string(nil), c.Scan.ResourceDirs...),
		IncludeFiles:        c.Scan.IncludeFiles,
	}
}

// Namer builds the title pipeline described by the configuration.
func (c *Config) Namer() (*naming.Namer, error) {
	return naming.New(c.NamingTables())
}
