package syntax

// ParseFunc is a combinator: it consumes tokens from a cursor and returns
// the advanced cursor plus the tree fragments and errors it produced, or a
// failure. A failing combinator must leave the caller's cursor untouched
// (the returned Input is the one it was given).
type ParseFunc[K comparable] func(Input[K]) (Input[K], Children[K], *Error)

// Tok matches the next significant token if its kind equals kind. On
// success the buffered trivia ahead of the token is flushed into the
// output, in original order, before the token itself; this is the only
// place trivia enters the tree, so every trivia token is attached exactly
// once. On failure the cursor does not advance.
func Tok[K comparable](kind K) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		tok, ok := in.peek()
		if !ok {
			return in, Children[K]{}, unexpectedEOF(in.Offset())
		}
		if tok.Kind != kind {
			start := in.Offset()
			return in, Children[K]{}, unexpectedToken(start, start+len(tok.Text), kind, tok.Kind)
		}
		return in.next(), childrenFromTokens(in.trivia, tok), nil
	}
}

// Seq runs each parser against the cursor produced by the previous one.
// The first failure aborts the whole sequence; partial consumption by
// earlier steps is discarded along with it.
func Seq[K comparable](parsers ...ParseFunc[K]) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		cur := in
		var out Children[K]
		for _, p := range parsers {
			next, ch, err := p(cur)
			if err != nil {
				return in, Children[K]{}, err
			}
			out.Add(ch)
			cur = next
		}
		return cur, out, nil
	}
}

// Alt tries each parser in order against the same cursor and returns the
// first success, mirroring ordered-choice (PEG-style) descent. If all
// fail, the last failure is reported.
func Alt[K comparable](parsers ...ParseFunc[K]) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		var lastErr *Error
		for _, p := range parsers {
			next, ch, err := p(in)
			if err == nil {
				return next, ch, nil
			}
			lastErr = err
		}
		if lastErr == nil {
			lastErr = Errorf(in.Offset(), in.Offset(), "no alternative matched")
		}
		return in, Children[K]{}, lastErr
	}
}

// Opt runs p and succeeds either way; on failure nothing is consumed and
// nothing is produced.
func Opt[K comparable](p ParseFunc[K]) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		next, ch, err := p(in)
		if err != nil {
			return in, Children[K]{}, nil
		}
		return next, ch, nil
	}
}

// Many0 repeats p zero or more times, accumulating output until p fails.
// It never fails itself. A successful iteration that consumes nothing
// terminates the loop, so a sub-parser matching the empty input cannot
// loop forever.
func Many0[K comparable](p ParseFunc[K]) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		cur := in
		var out Children[K]
		for {
			next, ch, err := p(cur)
			if err != nil {
				return cur, out, nil
			}
			if next.remaining() == cur.remaining() {
				return cur, out, nil
			}
			out.Add(ch)
			cur = next
		}
	}
}

// Many1 is Many0 requiring at least one match.
func Many1[K comparable](p ParseFunc[K]) ParseFunc[K] {
	return Seq(p, Many0(p))
}

// WrapNode wraps the contained parser's entire output into a single tree
// node of the given kind.
func WrapNode[K comparable](kind K, p ParseFunc[K]) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		next, ch, err := p(in)
		if err != nil {
			return in, ch, err
		}
		return next, ch.IntoNode(kind), nil
	}
}

// Recover runs p and passes success through unchanged. On failure it does
// not propagate: the cursor stays where it was, a childless error node is
// synthesized in the output, and one diagnostic (optionally translated by
// wrap) is recorded. Recover never consumes the offending tokens; callers
// wanting to skip them combine it with SkipUntil.
func Recover[K comparable](p ParseFunc[K], wrap func(*Error) *Error) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		next, ch, err := p(in)
		if err == nil {
			return next, ch, nil
		}
		if wrap != nil {
			err = wrap(err)
		}
		return in, childrenFromError(in.lang, err), nil
	}
}

// Expect matches kind like Tok, but degrades a mismatch into an error node
// plus a diagnostic instead of a failure.
func Expect[K comparable](kind K) ParseFunc[K] {
	return Recover(Tok(kind), nil)
}

// Ctx wraps any failure of p with an outer message, building the cause
// chain reported to the user.
func Ctx[K comparable](msg string, p ParseFunc[K]) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		next, ch, err := p(in)
		if err != nil {
			return in, ch, err.WithContext(msg)
		}
		return next, ch, nil
	}
}

// SkipUntil consumes significant tokens (with their leading trivia) up to,
// but not including, the first token whose kind appears in sync, wraps
// everything consumed into one error node and records one diagnostic with
// the given message. It fails without consuming anything when the cursor
// is already at a sync token or at the end of input, so it is safe as the
// last alternative of a repeated rule.
func SkipUntil[K comparable](msg string, sync ...K) ParseFunc[K] {
	return func(in Input[K]) (Input[K], Children[K], *Error) {
		tok, ok := in.peek()
		if !ok {
			return in, Children[K]{}, unexpectedEOF(in.Offset())
		}
		if kindIn(tok.Kind, sync) {
			start := in.Offset()
			return in, Children[K]{}, Errorf(start, start+len(tok.Text), "unexpected %v", tok.Kind)
		}
		start := in.Offset()
		end := start
		cur := in
		var elems []Element[K]
		for {
			tok, ok := cur.peek()
			if !ok || kindIn(tok.Kind, sync) {
				break
			}
			for _, tr := range cur.trivia {
				elems = append(elems, tr)
			}
			elems = append(elems, tok)
			end = cur.offset + cur.triviaLen + len(tok.Text)
			cur = cur.next()
		}
		node := NewNode(in.lang.ErrorKind(), elems)
		return cur, Children[K]{
			Errors:   []*Error{Errorf(start, end, "%s", msg)},
			elements: []Element[K]{node},
		}, nil
	}
}

// Root runs p over a full token stream and finalizes its output into a
// freestanding tree of the given kind plus the ordered list of collected
// errors. Any tokens the grammar left unconsumed are appended to the root
// so the tree stays lossless; leftover tokens with source text also
// produce a diagnostic.
func Root[K comparable](lang Language[K], kind K, tokens []Token[K], p ParseFunc[K]) (*Node[K], []*Error) {
	in := NewInput(lang, tokens)
	rest, ch, err := p(in)
	if err != nil {
		rest = in
		ch = Children[K]{Errors: []*Error{err}}
	}
	if rest.remaining() > 0 {
		start := rest.offset
		end := start
		significant := false
		var leftover Children[K]
		for _, t := range rest.trivia {
			leftover.elements = append(leftover.elements, t)
			end += len(t.Text)
		}
		for _, t := range rest.rest {
			leftover.elements = append(leftover.elements, t)
			end += len(t.Text)
			if len(t.Text) > 0 && !lang.IsTrivia(t.Kind) {
				significant = true
			}
		}
		if significant {
			leftover.Errors = append(leftover.Errors, Errorf(start, end, "unparsed input"))
		}
		ch.Add(leftover)
	}
	return NewNode(kind, ch.elements), ch.Errors
}

func kindIn[K comparable](kind K, kinds []K) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
