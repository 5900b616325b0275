// Package logging assembles the slog loggers used by the gametitle CLI.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes attribute helpers plus a no-op logger for tests and library
// code that was handed a nil logger. The naming core never logs; only the
// command layer and the directory and corpus tools do.
package logging
