// Command gametitle guesses human-readable game titles from file and
// directory names.
//
// Subcommands cover single guesses, word splitting, directory scans that can
// seed the accuracy corpus, corpus scoring, and configuration management.
// Diagnostics go to stderr through the configured logger; results go to
// stdout as tables or JSON.
package main
