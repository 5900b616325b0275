// Package corpus scores title guesses against a hand-audited fixture of
// file names and the titles a person would accept for them.
//
// Fixtures are JSON objects keyed by file name. Each value lists the ideal
// title and every acceptable alternative; entries produced by a directory
// scan carry a MUST_AUDIT flag until someone has checked them, and are
// skipped when scoring.
package corpus
