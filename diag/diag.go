// Package diag renders parser diagnostics for terminals: positions are
// resolved to line and column and the offending source line is shown with
// a caret marker under the error span.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/lus/syntax"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	position   = color.New(color.Bold)
	marker     = color.New(color.FgRed)
)

// Position converts a byte offset into a 1-based line and column.
func Position(src []byte, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, col = 1, 1
	for _, b := range src[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Print renders each diagnostic as a header line followed by the source
// line it points at and a caret run covering the error span.
func Print(w io.Writer, file string, src []byte, errs []*syntax.Error) {
	for _, e := range errs {
		printOne(w, file, src, e)
	}
}

func printOne(w io.Writer, file string, src []byte, e *syntax.Error) {
	line, col := Position(src, e.Start)
	fmt.Fprintf(w, "%s %s %s\n",
		position.Sprintf("%s:%d:%d:", file, line, col),
		errorLabel.Sprint("error:"),
		e.Error(),
	)

	text, lineStart := sourceLine(src, e.Start)
	if text == "" && e.Start >= len(src) {
		return
	}
	fmt.Fprintf(w, "  %s\n", text)

	width := e.End - e.Start
	if max := lineStart + len(text) - e.Start; width > max {
		width = max
	}
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(w, "  %s%s\n",
		strings.Repeat(" ", e.Start-lineStart),
		marker.Sprint(strings.Repeat("^", width)),
	)
}

// sourceLine returns the line containing offset, without its newline, and
// the offset of its first byte.
func sourceLine(src []byte, offset int) (string, int) {
	if offset > len(src) {
		offset = len(src)
	}
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return string(src[start:end]), start
}
