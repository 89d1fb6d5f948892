package syntax

// Input is a read-only cursor over a suffix of the token stream. It keeps
// the maximal run of trivia tokens immediately ahead of the next
// significant token buffered separately, so grammar matching can ignore
// trivia while the tree builder re-attaches it losslessly.
//
// Copying an Input is a cheap slice-reference copy; combinators advance
// copies speculatively and discard them on failure without affecting the
// caller's view.
type Input[K comparable] struct {
	lang      Language[K]
	offset    int        // bytes of source fully consumed so far
	trivia    []Token[K] // buffered trivia run ahead of the cursor
	triviaLen int        // total text length of the buffered run
	rest      []Token[K] // next significant token and everything after it
}

// NewInput wraps a full token stream in a cursor positioned at its start.
func NewInput[K comparable](lang Language[K], tokens []Token[K]) Input[K] {
	return Input[K]{lang: lang, rest: tokens}.advanceTrivia()
}

func (in Input[K]) advanceTrivia() Input[K] {
	i := 0
	for i < len(in.rest) && in.lang.IsTrivia(in.rest[i].Kind) {
		in.triviaLen += len(in.rest[i].Text)
		i++
	}
	in.trivia = in.rest[:i]
	in.rest = in.rest[i:]
	return in
}

// Empty reports whether no significant tokens remain.
func (in Input[K]) Empty() bool {
	return len(in.rest) == 0
}

// Offset returns the byte offset of the next significant token, counting
// the buffered trivia run as belonging to it.
func (in Input[K]) Offset() int {
	return in.offset + in.triviaLen
}

// remaining counts all tokens ahead of the cursor, trivia included. Two
// cursors over the same stream are at the same position iff their
// remaining counts match; combinators use this as their progress check.
func (in Input[K]) remaining() int {
	return len(in.trivia) + len(in.rest)
}

func (in Input[K]) peek() (Token[K], bool) {
	if len(in.rest) == 0 {
		return Token[K]{}, false
	}
	return in.rest[0], true
}

// next consumes the buffered trivia run and the current significant token,
// then buffers the trivia run ahead of the following one.
func (in Input[K]) next() Input[K] {
	tok := in.rest[0]
	return Input[K]{
		lang:   in.lang,
		offset: in.offset + in.triviaLen + len(tok.Text),
		rest:   in.rest[1:],
	}.advanceTrivia()
}
