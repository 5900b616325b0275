// Package config loads, normalizes, and validates gametitle configuration.
//
// It supplies the built-in naming tables as defaults, reads TOML files from
// the usual locations, and honours the GAMETITLE_LOG_LEVEL environment
// fallback. Config.NamingTables and Config.ScanOptions convert the file
// layout into the types the naming and scan packages consume, so callers
// never build those by hand.
package config
