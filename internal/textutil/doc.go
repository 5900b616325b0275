// Package textutil compares titles by their word content.
//
// A Fingerprint is a case-folded term frequency vector over the words the
// camelcase splitter finds, so "Mark Of The Ninja" and "MarkOfTheNinja" share
// every term. Pure punctuation words such as "&" or ":" are dropped. Cosine
// similarity of two fingerprints ranges from 0 (no shared words) to 1.
package textutil
