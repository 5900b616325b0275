package config

import (
	"gametitle/internal/naming"
	"gametitle/internal/scan"
)

const (
	defaultConfigPath  = "~/.config/gametitle/config.toml"
	projectConfigName  = "gametitle.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultOverrideSet = overridesReplace
	logLevelEnv        = "GAMETITLE_LOG_LEVEL"
)

const (
	overridesReplace = "replace"
	overridesAppend  = "append"
	overridesNone    = "none"
)

// Default returns a Config populated with the built-in tables.
func Default() Config {
	return Config{
		Naming: Naming{
			Extensions:         naming.DefaultExtensions(),
			WordBoundaryChars:  naming.DefaultWordBoundaryChars,
			SubtitlePattern:    naming.DefaultSubtitlePattern,
			VersionPattern:     naming.DefaultVersionPattern,
			ShortNameGraphemes: naming.DefaultShortNameGraphemes,
			OverridesMode:      defaultOverrideSet,
		},
		Scan: Scan{
			IgnoredBinaries:     scan.DefaultIgnoredBinaries(),
			NonBinaryExtensions: scan.DefaultNonBinaryExtensions(),
			ResourceDirs:        scan.DefaultResourceDirs(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
