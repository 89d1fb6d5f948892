package lustre

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrUnclosedStr     = errors.New("unclosed string literal")
	ErrUnclosedComment = errors.New("unclosed comment")
)

// Lexer scans Lustre source into a lossless token stream: whitespace,
// comments and unrecognized bytes come out as trivia tokens, so
// concatenating every literal reproduces the input byte for byte.
//
// Fixed lexemes are matched greedily: the scanner takes the longest window
// of non-whitespace input and shrinks it one byte at a time until a prefix
// matches a table entry, a numeric constant or an identifier. Keywords win
// over identifiers only on exact match, so "integer" stays an identifier
// while "int" is a keyword.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Lex scans src to completion. The returned stream always ends with a
// zero-length EOF token. An unclosed string or block comment aborts the
// scan; every other byte lexes to some token.
func Lex(src []byte, file string) ([]Token, error) {
	l := NewLexer(src, file)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() (Token, error) {
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokEOF, Span: Span{Start: start, End: start}}, nil
	}

	ch := l.peek()

	if isWhitespace(ch) {
		return l.scanWhitespace(start), nil
	}
	if ch == '"' {
		return l.scanString(start)
	}
	if ch == '-' && l.peekN(1) == '-' {
		return l.scanLineComment(start), nil
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(start, '/')
	}
	if ch == '(' && l.peekN(1) == '*' {
		return l.scanBlockComment(start, ')')
	}

	return l.scanWindow(start), nil
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isWhitespace(l.peek()) && l.pos < len(l.input) {
		l.advance()
	}
	return l.token(TokWhitespace, start)
}

// scanString scans a double-quoted literal, quotes included. Strings may
// span lines; there are no escape sequences.
func (l *Lexer) scanString(start Position) (Token, error) {
	l.advance()
	for {
		if l.pos >= len(l.input) {
			return Token{}, fmt.Errorf("%s:%d:%d: %w", l.file, start.Line, start.Column, ErrUnclosedStr)
		}
		if l.peek() == '"' {
			l.advance()
			return l.token(TokStr, start), nil
		}
		l.advance()
	}
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokLineComment, start)
}

// scanBlockComment handles both comment forms: "/*" closed by "*/" and
// "(*" closed by "*)". close is the byte that must follow '*'.
func (l *Lexer) scanBlockComment(start Position, close byte) (Token, error) {
	l.advanceN(2)
	for {
		if l.pos >= len(l.input) {
			return Token{}, fmt.Errorf("%s:%d:%d: %w", l.file, start.Line, start.Column, ErrUnclosedComment)
		}
		if l.peek() == '*' && l.peekN(1) == close {
			l.advanceN(2)
			return l.token(TokComment, start), nil
		}
		l.advance()
	}
}

// scanWindow performs the greedy longest-match scan for everything that is
// not whitespace, a string or a comment. A byte no shrinking prefix can
// match becomes a one-byte error token and scanning continues after it.
func (l *Lexer) scanWindow(start Position) Token {
	end := l.windowEnd()
	for n := end - l.pos; n >= 1; n-- {
		w := string(l.input[l.pos : l.pos+n])
		if kind, ok := matchWindow(w); ok {
			l.advanceN(n)
			return l.token(kind, start)
		}
	}
	l.advance()
	return l.token(TokError, start)
}

// windowEnd caps the match window at the next whitespace or string quote;
// no fixed lexeme, number or identifier can span either.
func (l *Lexer) windowEnd() int {
	i := l.pos
	for i < len(l.input) && !isWhitespace(l.input[i]) && l.input[i] != '"' {
		i++
	}
	return i
}

// matchWindow classifies a candidate lexeme: fixed lexemes first, then
// integer constants, then real constants, then identifiers. Integer wins
// over real so "12" is an IConst even though it also parses as a float.
func matchWindow(w string) (Kind, bool) {
	if kind, ok := tokenTable[w]; ok {
		return kind, true
	}
	if w[0] >= '0' && w[0] <= '9' {
		if _, err := strconv.ParseInt(w, 10, 64); err == nil {
			return TokIConst, true
		}
		// ParseFloat is more liberal than the language: no hex floats,
		// no digit-separating underscores.
		if _, err := strconv.ParseFloat(w, 64); err == nil && !strings.ContainsAny(w, "_xX") {
			return TokRConst, true
		}
		return 0, false
	}
	if isIdent(w) {
		return TokIdent, true
	}
	return 0, false
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isIdent(w string) bool {
	for i, r := range w {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return len(w) > 0
}

func (l *Lexer) token(kind Kind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}
