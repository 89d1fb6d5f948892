package diag

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/lus/syntax"
)

func TestPosition(t *testing.T) {
	src := []byte("first\nsecond\nthird")

	tests := []struct {
		name   string
		offset int
		line   int
		col    int
	}{
		{"start", 0, 1, 1},
		{"mid first line", 3, 1, 4},
		{"start of second line", 6, 2, 1},
		{"mid third line", 15, 3, 3},
		{"end of input", len(src), 3, 6},
		{"past end is clamped", len(src) + 10, 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := Position(src, tt.offset)
			assert.Equal(t, tt.line, line, "line")
			assert.Equal(t, tt.col, col, "col")
		})
	}
}

func TestPrint(t *testing.T) {
	color.NoColor = true
	src := []byte("let\n  x = ;\ntel\n")
	// Span of the ";" on line 2.
	errs := []*syntax.Error{{Start: 10, End: 11, Msg: "expected expression"}}

	var b strings.Builder
	Print(&b, "test.lus", src, errs)
	out := b.String()

	require.Contains(t, out, "test.lus:2:7: error: expected expression")
	assert.Contains(t, out, "  x = ;")
	assert.Contains(t, out, "\n        ^\n")
}

func TestPrintCauseChain(t *testing.T) {
	color.NoColor = true
	src := []byte("x = 1\n")
	inner := &syntax.Error{Start: 0, End: 1, Msg: "expected let, found Ident"}
	errs := []*syntax.Error{inner.WithContext("in body")}

	var b strings.Builder
	Print(&b, "test.lus", src, errs)

	assert.Contains(t, b.String(), "in body: expected let, found Ident")
}

func TestPrintAtEndOfInput(t *testing.T) {
	color.NoColor = true
	src := []byte("node")
	errs := []*syntax.Error{{Start: 4, End: 4, Msg: "unexpected end of input"}}

	var b strings.Builder
	Print(&b, "test.lus", src, errs)
	out := b.String()

	require.Contains(t, out, "test.lus:1:5: error: unexpected end of input")
	// The caret lands just past the last character.
	assert.Contains(t, out, "\n  node\n      ^\n")
}
