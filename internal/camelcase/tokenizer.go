package camelcase

import (
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WordSpan is a half-open byte range [Start, End) of one word in the input.
// Spans always fall on grapheme cluster boundaries.
type WordSpan struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s WordSpan) Len() int {
	return s.End - s.Start
}

// In returns the substring of input covered by the span.
func (s WordSpan) In(input string) string {
	return input[s.Start:s.End]
}

const unsetOffset = -1

// Tokenizer splits one string into word spans in a single forward pass. It
// cannot be rewound; build a new one to tokenize again.
type Tokenizer struct {
	input      string
	rest       string
	classifier *Classifier

	segState   int
	start      int
	prevOffset int
	prevClass  CharClass
	suppressAt int
	skipping   bool
	flushed    bool
}

// NewTokenizer returns a tokenizer over s using the default classifier.
func NewTokenizer(s string) *Tokenizer {
	return defaultClassifier.Tokenizer(s)
}

// Tokenizer returns a tokenizer over s that classifies with c.
func (c *Classifier) Tokenizer(s string) *Tokenizer {
	if c == nil {
		c = defaultClassifier
	}
	return &Tokenizer{
		input:      s,
		rest:       s,
		classifier: c,
		segState:   -1,
		prevClass:  Start,
		suppressAt: unsetOffset,
	}
}

// Next returns the next word span. The second result is false once the input
// is exhausted.
func (t *Tokenizer) Next() (WordSpan, bool) {
	for len(t.rest) > 0 {
		offset := len(t.input) - len(t.rest)

		var cluster string
		cluster, t.rest, _, t.segState = uniseg.FirstGraphemeClusterInString(t.rest, t.segState)

		// Combining marks ride along with their base character.
		base, _ := utf8.DecodeRuneInString(cluster)
		class := t.classifier.Classify(base)

		span, ok := t.apply(Transition(t.prevClass, class), offset)
		t.prevClass = class
		t.prevOffset = offset
		if ok {
			return span, true
		}
	}

	if !t.flushed {
		t.flushed = true
		if span, ok := t.pending(len(t.input)); ok {
			return span, true
		}
	}
	return WordSpan{}, false
}

// All yields the remaining spans. Ranging over it consumes the tokenizer.
func (t *Tokenizer) All() iter.Seq[WordSpan] {
	return func(yield func(WordSpan) bool) {
		for {
			span, ok := t.Next()
			if !ok || !yield(span) {
				return
			}
		}
	}
}

func (t *Tokenizer) apply(action EditAction, offset int) (WordSpan, bool) {
	switch action {
	case Skip:
		span, ok := t.pending(offset)
		t.start = offset
		t.skipping = true
		return span, ok
	case StartWord:
		span, ok := t.pending(offset)
		t.start = offset
		t.skipping = false
		return span, ok
	case AlreadyStartedWord:
		if t.prevOffset == t.suppressAt {
			return WordSpan{}, false
		}
		span, ok := t.pending(t.prevOffset)
		t.start = t.prevOffset
		t.skipping = false
		return span, ok
	case Suppress:
		t.suppressAt = offset
	}
	return WordSpan{}, false
}

// pending returns the word accumulated since t.start, ending at end. Skipped
// regions and empty words are never reported.
func (t *Tokenizer) pending(end int) (WordSpan, bool) {
	if t.skipping || end <= t.start {
		return WordSpan{}, false
	}
	return WordSpan{Start: t.start, End: end}, true
}
