// Package naming turns installer, archive, and executable file names into
// human-readable game titles without consulting any external metadata.
//
// A Namer is built once from Tables (recognized extensions, the subtitle
// pattern, override rules, classifier sets) and is read-only afterwards, so a
// single instance can serve concurrent callers. FilenameToName runs the full
// heuristic pipeline: extension stripping, whitespace normalization with a
// camelcase fallback, subtitle colons, up-only titlecasing, digit spacing,
// short-name uppercasing, cleanup, and finally the override rules.
//
// The pipeline is best effort. Misses are expected; the corpus package
// measures how often they happen.
package naming
