package syntax

import (
	"strings"
	"testing"
)

type testKind int

const (
	tEOF testKind = iota
	tWS
	tErr
	tIdent
	tLet
	tEq
	tSemi
	tStmt
	tFile
)

var testKindNames = map[testKind]string{
	tEOF:   "EOF",
	tWS:    "Whitespace",
	tErr:   "Error",
	tIdent: "Ident",
	tLet:   "let",
	tEq:    "=",
	tSemi:  ";",
	tStmt:  "Stmt",
	tFile:  "File",
}

func (k testKind) String() string {
	if name, ok := testKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type testLang struct{}

func (testLang) IsTrivia(k testKind) bool { return k == tWS }
func (testLang) ErrorKind() testKind      { return tErr }

func tk(kind testKind, text string) Token[testKind] {
	return Token[testKind]{Kind: kind, Text: text}
}

func input(tokens ...Token[testKind]) Input[testKind] {
	return NewInput[testKind](testLang{}, tokens)
}

func joinText(tokens []Token[testKind]) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

func TestTokAttachesLeadingTrivia(t *testing.T) {
	in := input(tk(tWS, "  "), tk(tWS, "-- c\n"), tk(tIdent, "x"), tk(tEOF, ""))

	next, ch, err := Tok(tIdent)(in)
	if err != nil {
		t.Fatalf("Tok(Ident) failed: %v", err)
	}
	elems := ch.Elements()
	if len(elems) != 3 {
		t.Fatalf("len(elements) = %d, want 3 (two trivia + token)", len(elems))
	}
	node := NewNode(tStmt, elems)
	if node.Text() != "  -- c\nx" {
		t.Errorf("Text = %q, want %q", node.Text(), "  -- c\nx")
	}
	if next.Offset() != 8 {
		t.Errorf("Offset = %d, want 8", next.Offset())
	}
}

func TestTokFailureDoesNotAdvance(t *testing.T) {
	in := input(tk(tWS, " "), tk(tSemi, ";"), tk(tEOF, ""))

	next, _, err := Tok(tIdent)(in)
	if err == nil {
		t.Fatal("Tok(Ident) succeeded on ';'")
	}
	if err.Start != 1 || err.End != 2 {
		t.Errorf("error span = [%d,%d), want [1,2)", err.Start, err.End)
	}
	if next.remaining() != in.remaining() {
		t.Error("failed Tok advanced the cursor")
	}
}

func TestTokUnexpectedEOF(t *testing.T) {
	in := input()
	_, _, err := Tok(tIdent)(in)
	if err == nil {
		t.Fatal("Tok on empty input succeeded")
	}
	if !strings.Contains(err.Msg, "end of input") {
		t.Errorf("Msg = %q, want end-of-input error", err.Msg)
	}
}

func TestSeqAbortsWithoutConsuming(t *testing.T) {
	in := input(tk(tLet, "let"), tk(tWS, " "), tk(tSemi, ";"), tk(tEOF, ""))

	next, _, err := Seq(Tok(tLet), Tok(tIdent))(in)
	if err == nil {
		t.Fatal("sequence matched let ;")
	}
	if next.remaining() != in.remaining() {
		t.Error("failed sequence leaked consumption to the caller")
	}
	// The discarded attempt must not have disturbed the original cursor.
	if _, _, err := Tok(tLet)(in); err != nil {
		t.Errorf("original cursor unusable after failed sequence: %v", err)
	}
}

func TestRecoverInsertsErrorNode(t *testing.T) {
	// let <missing ident> = : recovery produces an error node in place of
	// the identifier and the trailing '=' still matches.
	in := input(tk(tLet, "let"), tk(tWS, " "), tk(tEq, "="), tk(tEOF, ""))

	p := Seq(Tok(tLet), Recover(Tok(tIdent), nil), Tok(tEq))
	next, ch, err := p(in)
	if err != nil {
		t.Fatalf("recoverable sequence failed: %v", err)
	}
	if len(ch.Errors) != 1 {
		t.Fatalf("len(errors) = %d, want 1", len(ch.Errors))
	}
	var errNodes int
	for _, el := range ch.Elements() {
		if n, ok := el.(*Node[testKind]); ok && n.Kind() == tErr {
			errNodes++
		}
	}
	if errNodes != 1 {
		t.Errorf("error nodes = %d, want 1", errNodes)
	}
	if !next.Empty() {
		// only EOF remains
		if tok, ok := next.peek(); !ok || tok.Kind != tEOF {
			t.Errorf("cursor not at EOF after recovery")
		}
	}
	if got := NewNode(tStmt, ch.Elements()).Text(); got != "let =" {
		t.Errorf("Text = %q, want %q", got, "let =")
	}
}

func TestMany0(t *testing.T) {
	t.Run("zero matches", func(t *testing.T) {
		in := input(tk(tSemi, ";"), tk(tEOF, ""))
		next, ch, err := Many0(Tok(tIdent))(in)
		if err != nil {
			t.Fatalf("Many0 failed: %v", err)
		}
		if len(ch.Elements()) != 0 {
			t.Errorf("elements = %d, want 0", len(ch.Elements()))
		}
		if next.remaining() != in.remaining() {
			t.Error("Many0 advanced on zero matches")
		}
	})

	t.Run("three matches", func(t *testing.T) {
		in := input(
			tk(tIdent, "a"), tk(tWS, " "),
			tk(tIdent, "b"), tk(tWS, " "),
			tk(tIdent, "c"), tk(tSemi, ";"), tk(tEOF, ""),
		)
		next, ch, err := Many0(Tok(tIdent))(in)
		if err != nil {
			t.Fatalf("Many0 failed: %v", err)
		}
		if got := NewNode(tStmt, ch.Elements()).Text(); got != "a b c" {
			t.Errorf("Text = %q, want %q", got, "a b c")
		}
		if tok, ok := next.peek(); !ok || tok.Kind != tSemi {
			t.Error("Many0 did not stop at the first non-matching token")
		}
	})

	t.Run("zero-progress sub-parser terminates", func(t *testing.T) {
		in := input(tk(tSemi, ";"), tk(tEOF, ""))
		next, _, err := Many0(Opt(Tok(tIdent)))(in)
		if err != nil {
			t.Fatalf("Many0 failed: %v", err)
		}
		if next.remaining() != in.remaining() {
			t.Error("Many0 advanced via empty matches")
		}
	})
}

func TestAltIsOrderedChoice(t *testing.T) {
	in := input(tk(tIdent, "x"), tk(tEOF, ""))

	p := Alt(Tok(tLet), Tok(tIdent), Tok(tSemi))
	_, ch, err := p(in)
	if err != nil {
		t.Fatalf("Alt failed: %v", err)
	}
	if got := NewNode(tStmt, ch.Elements()).Text(); got != "x" {
		t.Errorf("Text = %q, want %q", got, "x")
	}

	if _, _, err := Alt(Tok(tLet), Tok(tSemi))(in); err == nil {
		t.Error("Alt succeeded with no matching alternative")
	}
}

func TestCtxWrapsCause(t *testing.T) {
	in := input(tk(tSemi, ";"), tk(tEOF, ""))

	_, _, err := Ctx("in statement", Tok(tIdent))(in)
	if err == nil {
		t.Fatal("Ctx parser succeeded unexpectedly")
	}
	if err.Msg != "in statement" {
		t.Errorf("Msg = %q, want %q", err.Msg, "in statement")
	}
	if err.Cause == nil {
		t.Fatal("Cause is nil")
	}
	if err.Start != err.Cause.Start || err.End != err.Cause.End {
		t.Error("context changed the error span")
	}
}

func TestSkipUntil(t *testing.T) {
	in := input(
		tk(tLet, "let"), tk(tWS, " "),
		tk(tIdent, "x"), tk(tWS, " "),
		tk(tSemi, ";"), tk(tEOF, ""),
	)

	next, ch, err := SkipUntil[testKind]("expected statement", tSemi)(in)
	if err != nil {
		t.Fatalf("SkipUntil failed: %v", err)
	}
	if len(ch.Errors) != 1 {
		t.Fatalf("errors = %d, want 1", len(ch.Errors))
	}
	elems := ch.Elements()
	if len(elems) != 1 {
		t.Fatalf("elements = %d, want 1 error node", len(elems))
	}
	node, ok := elems[0].(*Node[testKind])
	if !ok || node.Kind() != tErr {
		t.Fatal("SkipUntil did not produce an error node")
	}
	if node.Text() != "let x" {
		t.Errorf("error node text = %q, want %q", node.Text(), "let x")
	}
	if tok, ok := next.peek(); !ok || tok.Kind != tSemi {
		t.Error("cursor not at the sync token")
	}

	// Already at a sync token: must fail without consuming.
	atSync := input(tk(tSemi, ";"), tk(tEOF, ""))
	if _, _, err := SkipUntil[testKind]("expected statement", tSemi)(atSync); err == nil {
		t.Error("SkipUntil consumed a sync token")
	}
}

func TestRootLossless(t *testing.T) {
	tokens := []Token[testKind]{
		tk(tWS, "  "),
		tk(tLet, "let"), tk(tWS, " "),
		tk(tIdent, "x"), tk(tWS, " "),
		tk(tEq, "="), tk(tWS, " "),
		tk(tIdent, "y"),
		tk(tSemi, ";"),
		tk(tWS, "\n"),
		tk(tEOF, ""),
	}

	stmt := WrapNode(tStmt, Seq(Tok(tLet), Tok(tIdent), Tok(tEq), Tok(tIdent), Tok(tSemi)))
	root, errs := Root[testKind](testLang{}, tFile, tokens, Seq(stmt, Tok(tEOF)))
	if len(errs) != 0 {
		t.Fatalf("errors = %v, want none", errs)
	}
	if root.Text() != joinText(tokens) {
		t.Errorf("round trip = %q, want %q", root.Text(), joinText(tokens))
	}
}

func TestRootFlushesUnconsumedInput(t *testing.T) {
	tokens := []Token[testKind]{
		tk(tLet, "let"), tk(tWS, " "),
		tk(tIdent, "x"),
		tk(tEOF, ""),
	}

	root, errs := Root[testKind](testLang{}, tFile, tokens, Tok(tLet))
	if root.Text() != "let x" {
		t.Errorf("round trip = %q, want %q", root.Text(), "let x")
	}
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1 unparsed-input error", len(errs))
	}
	if !strings.Contains(errs[0].Msg, "unparsed") {
		t.Errorf("Msg = %q, want unparsed-input error", errs[0].Msg)
	}
}

func TestRootLeadingTriviaOnlyFile(t *testing.T) {
	tokens := []Token[testKind]{
		tk(tWS, "-- only a comment\n"),
		tk(tEOF, ""),
	}

	root, errs := Root[testKind](testLang{}, tFile, tokens, Tok(tEOF))
	if len(errs) != 0 {
		t.Fatalf("errors = %v, want none", errs)
	}
	if root.Text() != "-- only a comment\n" {
		t.Errorf("round trip = %q", root.Text())
	}
}
