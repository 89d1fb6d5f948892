package lustre

import (
	"errors"
	"strings"
	"testing"
)

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Lex([]byte(input), "test.lus")
	if err != nil {
		t.Fatalf("Lex(%q) failed: %v", input, err)
	}
	return tokens
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer([]byte("node main() returns ();"), "main.lus")
	pos := lexer.Position()

	if pos.File != "main.lus" {
		t.Errorf("File = %q, want %q", pos.File, "main.lus")
	}
	if pos.Line != 1 {
		t.Errorf("Line = %d, want %d", pos.Line, 1)
	}
	if pos.Column != 1 {
		t.Errorf("Column = %d, want %d", pos.Column, 1)
	}
	if pos.Offset != 0 {
		t.Errorf("Offset = %d, want %d", pos.Offset, 0)
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"and", TokAnd},
		{"assert", TokAssert},
		{"bool", TokBool},
		{"const", TokConst},
		{"current", TokCurrent},
		{"div", TokDiv},
		{"else", TokElse},
		{"extern", TokExtern},
		{"false", TokFalse},
		{"fby", TokFBy},
		{"function", TokFunction},
		{"if", TokIf},
		{"include", TokInclude},
		{"int", TokInt},
		{"let", TokLet},
		{"merge", TokMerge},
		{"mod", TokMod},
		{"node", TokNode},
		{"not", TokNot},
		{"or", TokOr},
		{"pre", TokPre},
		{"real", TokReal},
		{"returns", TokReturns},
		{"tel", TokTel},
		{"then", TokThen},
		{"true", TokTrue},
		{"type", TokType},
		{"unsafe", TokUnsafe},
		{"var", TokVar},
		{"when", TokWhen},
		{"xor", TokXor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)
			if len(tokens) != 2 {
				t.Fatalf("len(tokens) = %d, want 2 (keyword + EOF)", len(tokens))
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
			if tokens[0].Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tokens[0].Literal, tt.input)
			}
		})
	}
}

func TestLexerIdentifiers(t *testing.T) {
	tests := []string{
		"x",
		"counter",
		"myNode",
		"with_underscore",
		"_leading",
		"v123",
		"integer", // keyword prefix, but longer
		"telltale",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens := lexAll(t, input)
			if tokens[0].Kind != TokIdent {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, TokIdent)
			}
			if tokens[0].Literal != input {
				t.Errorf("Literal = %q, want %q", tokens[0].Literal, input)
			}
		})
	}
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"->", TokArrow},
		{"=>", TokImpl},
		{"<=", TokLte},
		{"<>", TokNeq},
		{">=", TokGte},
		{"..", TokCDots},
		{"**", TokPower},
		{"<<", TokOpenStaticPar},
		{">>", TokCloseStaticPar},
		{"+", TokPlus},
		{"-", TokMinus},
		{"*", TokStar},
		{"/", TokSlash},
		{"%", TokPercent},
		{"^", TokHat},
		{"#", TokSharp},
		{"|", TokBar},
		{"=", TokEqual},
		{".", TokDot},
		{",", TokComma},
		{";", TokSemicolon},
		{":", TokColon},
		{"(", TokOpenPar},
		{")", TokClosePar},
		{"{", TokOpenBrace},
		{"}", TokCloseBrace},
		{"[", TokOpenBracket},
		{"]", TokCloseBracket},
		{"<", TokLt},
		{">", TokGt},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
		})
	}
}

func TestLexerLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  []Kind
	}{
		{"->", []Kind{TokArrow, TokEOF}},
		{"- >", []Kind{TokMinus, TokWhitespace, TokGt, TokEOF}},
		{"<<x>>", []Kind{TokOpenStaticPar, TokIdent, TokCloseStaticPar, TokEOF}},
		{"<=>", []Kind{TokLte, TokGt, TokEOF}},
		{"a+b", []Kind{TokIdent, TokPlus, TokIdent, TokEOF}},
		{"-12", []Kind{TokMinus, TokIConst, TokEOF}},
		{"x=0->pre", []Kind{TokIdent, TokEqual, TokIConst, TokArrow, TokPre, TokEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)
			got := kinds(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("kinds = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("kinds = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"0", TokIConst},
		{"42", TokIConst},
		{"12345678901", TokIConst},
		{"3.14", TokRConst},
		{"0.5", TokRConst},
		{"1e3", TokRConst},
		{"1.5e-3", TokRConst},
		{"12.", TokRConst},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
			if tokens[0].Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tokens[0].Literal, tt.input)
			}
		})
	}
}

func TestLexerString(t *testing.T) {
	tokens := lexAll(t, `include "util.lus"`)

	want := []Kind{TokInclude, TokWhitespace, TokStr, TokEOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if tokens[2].Literal != `"util.lus"` {
		t.Errorf("Literal = %q, want %q", tokens[2].Literal, `"util.lus"`)
	}
}

func TestLexerUnclosedString(t *testing.T) {
	_, err := Lex([]byte(`x = "oops`), "test.lus")
	if !errors.Is(err, ErrUnclosedStr) {
		t.Errorf("err = %v, want ErrUnclosedStr", err)
	}
	if err == nil || !strings.Contains(err.Error(), "test.lus:1:5") {
		t.Errorf("err = %v, want position test.lus:1:5", err)
	}
}

func TestLexerComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"line", "-- note\n", TokLineComment},
		{"slash block", "/* note */", TokComment},
		{"paren block", "(* note *)", TokComment},
		{"multiline block", "/* a\nb */", TokComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := lexAll(t, tt.input)
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
		})
	}
}

func TestLexerLineCommentStopsAtNewline(t *testing.T) {
	tokens := lexAll(t, "-- c\nx")

	want := []Kind{TokLineComment, TokWhitespace, TokIdent, TokEOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if tokens[0].Literal != "-- c" {
		t.Errorf("Literal = %q, want %q", tokens[0].Literal, "-- c")
	}
}

func TestLexerUnclosedComment(t *testing.T) {
	for _, input := range []string{"/* oops", "(* oops"} {
		t.Run(input, func(t *testing.T) {
			_, err := Lex([]byte(input), "test.lus")
			if !errors.Is(err, ErrUnclosedComment) {
				t.Errorf("err = %v, want ErrUnclosedComment", err)
			}
		})
	}
}

func TestLexerUnknownByte(t *testing.T) {
	tokens := lexAll(t, "x ? y")

	want := []Kind{TokIdent, TokWhitespace, TokError, TokWhitespace, TokIdent, TokEOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if tokens[2].Literal != "?" {
		t.Errorf("Literal = %q, want %q", tokens[2].Literal, "?")
	}
}

func TestLexerEmptyInput(t *testing.T) {
	tokens := lexAll(t, "")

	if len(tokens) != 1 || tokens[0].Kind != TokEOF {
		t.Fatalf("tokens = %v, want a single EOF", kinds(tokens))
	}
	if tokens[0].Literal != "" {
		t.Errorf("EOF Literal = %q, want empty", tokens[0].Literal)
	}
}

func TestLexerLossless(t *testing.T) {
	input := "node count(reset: bool) returns (n: int);\n" +
		"-- running count\n" +
		"let\n" +
		"  n = if reset then 0 else (0 -> pre n) + 1; /* step */\n" +
		"tel\n"

	tokens := lexAll(t, input)

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Literal)
	}
	if b.String() != input {
		t.Errorf("round trip = %q, want %q", b.String(), input)
	}
}

func TestLexerSpans(t *testing.T) {
	tokens := lexAll(t, "let\nx")

	// "let" on line 1, "x" on line 2 after the newline trivia.
	if tokens[0].Span.Start.Line != 1 || tokens[0].Span.End.Offset != 3 {
		t.Errorf("let span = %+v", tokens[0].Span)
	}
	x := tokens[2]
	if x.Kind != TokIdent || x.Span.Start.Line != 2 || x.Span.Start.Column != 1 {
		t.Errorf("x span = %+v", x.Span)
	}
	if x.Span.Start.Offset != 4 {
		t.Errorf("x offset = %d, want 4", x.Span.Start.Offset)
	}
}
