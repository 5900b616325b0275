package config

import (
	"errors"
	"fmt"
	"strings"

	"gametitle/internal/naming"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateNaming() error {
	if len(c.Naming.Extensions) == 0 {
		return errors.New("naming.extensions must list at least one extension")
	}
	for i, ext := range c.Naming.Extensions {
		if ext == "" {
			return fmt.Errorf("naming.extensions[%d] is empty", i)
		}
	}
	if c.Naming.ShortNameGraphemes <= 0 {
		return errors.New("naming.short_name_graphemes must be positive")
	}
	if c.Naming.StripVersions && c.Naming.VersionPattern == "" {
		return errors.New("naming.version_pattern is required when strip_versions is enabled")
	}
	switch c.Naming.OverridesMode {
	case overridesReplace, overridesAppend, overridesNone:
	default:
		return fmt.Errorf("naming.overrides_mode: unsupported value %q (use replace, append, or none)", c.Naming.OverridesMode)
	}
	for i, rule := range c.Overrides {
		if rule.Pattern == "" {
			return fmt.Errorf("overrides[%d].pattern is empty", i)
		}
	}
	if _, err := naming.New(c.NamingTables()); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if err := c.ScanOptions().Validate(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
