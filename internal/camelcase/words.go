package camelcase

import (
	"iter"
	"strings"
)

// Spans yields the word spans of s. Each range over the result tokenizes s
// from the beginning.
func (c *Classifier) Spans(s string) iter.Seq[WordSpan] {
	return func(yield func(WordSpan) bool) {
		c.Tokenizer(s).All()(yield)
	}
}

// Words yields the words of s as substrings of s.
func (c *Classifier) Words(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		tok := c.Tokenizer(s)
		for {
			span, ok := tok.Next()
			if !ok || !yield(span.In(s)) {
				return
			}
		}
	}
}

// WordCount returns the number of words in s without building substrings.
func (c *Classifier) WordCount(s string) int {
	tok := c.Tokenizer(s)
	n := 0
	for {
		if _, ok := tok.Next(); !ok {
			return n
		}
		n++
	}
}

// ToSpaces rejoins the words of s with single spaces.
func (c *Classifier) ToSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for word := range c.Words(s) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	return b.String()
}

// Spans yields the word spans of s using the default classifier.
func Spans(s string) iter.Seq[WordSpan] { return defaultClassifier.Spans(s) }

// Words yields the words of s using the default classifier.
func Words(s string) iter.Seq[string] { return defaultClassifier.Words(s) }

// WordCount counts the words of s using the default classifier.
func WordCount(s string) int { return defaultClassifier.WordCount(s) }

// ToSpaces rejoins the words of s with single spaces using the default
// classifier.
func ToSpaces(s string) string { return defaultClassifier.ToSpaces(s) }
