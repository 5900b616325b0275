// Package camelcase infers word boundaries in names that were written without
// spaces, such as "TheKing&I" or "RogueLegacyLinux".
//
// Inference runs in three layers. A Classifier maps the base code point of
// each grapheme cluster to a CharClass. Transition maps a pair of adjacent
// classes to an EditAction. The Tokenizer walks the input once, applies the
// actions, and yields half-open byte spans for each word it finds.
//
// Numbers are always split from the words around them ("catch22" becomes
// "catch 22") because that matches how game and installer names are written.
// Number separators, apostrophes, and closing punctuation never start a word,
// while opening punctuation suppresses the split that an uppercase-lowercase
// pair would otherwise cause, so "(Hello)" stays one word.
//
// Everything here is pure. A Classifier is read-only once built and can be
// shared between goroutines; a Tokenizer belongs to one caller.
package camelcase
