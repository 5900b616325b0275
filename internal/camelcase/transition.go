package camelcase

// EditAction tells the tokenizer what to do at the boundary in front of the
// current character.
type EditAction uint8

const (
	// Literal extends the current word.
	Literal EditAction = iota
	// StartWord ends the current word and starts a new one here.
	StartWord
	// AlreadyStartedWord ends the current word one character back. In "ABc"
	// the case change is seen at "c" but the new word begins at "B".
	AlreadyStartedWord
	// Suppress marks the current position so an AlreadyStartedWord that
	// would split exactly here is ignored.
	Suppress
	// Skip ends the current word and drops the current character.
	Skip
)

var editActionNames = [...]string{
	Literal:            "literal",
	StartWord:          "start_word",
	AlreadyStartedWord: "already_started_word",
	Suppress:           "suppress",
	Skip:               "skip",
}

func (a EditAction) String() string {
	if int(a) < len(editActionNames) {
		return editActionNames[a]
	}
	return "unknown"
}

// Transition returns the action for moving from prev to curr. It is defined
// for every pair; rule order matters.
func Transition(prev, curr CharClass) EditAction {
	switch {
	case curr == Whitespace:
		return Skip
	case prev == StartPunctuation:
		// "(Hello" must not split as "(" "Hello".
		return Suppress
	case prev == Whitespace, curr == Titlecase,
		prev == Ampersand, curr == Ampersand:
		return StartWord
	case prev == NumberSeparator, curr == NumberSeparator,
		prev == Apostrophe, curr == Apostrophe,
		curr == EndPunctuation:
		return Literal
	case (prev == Uppercase || prev == Titlecase) && curr == Lowercase:
		return AlreadyStartedWord
	case prev != curr:
		return StartWord
	default:
		return Literal
	}
}
