package syntax

import "fmt"

// Error is a syntactic diagnostic: a byte span into the source, a message,
// and an optional wrapped cause added as the error propagates up through
// enclosing grammar rules. Errors are values; they never abort a parse by
// themselves.
type Error struct {
	Start int
	End   int
	Msg   string
	Cause *Error
}

func Errorf(start, end int, format string, args ...any) *Error {
	return &Error{Start: start, End: end, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

// WithContext wraps the error with an outer message, keeping the original
// span and error reachable through the cause chain.
func (e *Error) WithContext(msg string) *Error {
	return &Error{Start: e.Start, End: e.End, Msg: msg, Cause: e}
}

// Unwrap returns the cause, if any, so errors.Is/As can walk the chain.
func (e *Error) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

func unexpectedEOF(pos int) *Error {
	return &Error{Start: pos, End: pos, Msg: "unexpected end of input"}
}

func unexpectedToken[K comparable](start, end int, expected, found K) *Error {
	return Errorf(start, end, "expected %v, found %v", expected, found)
}
