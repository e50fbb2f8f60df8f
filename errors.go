package english

import (
	"errors"
	"fmt"
)

// Kinds of parsing failures.
// A [ParseError] unwraps to exactly one of them, so callers can test for
// a particular kind with [errors.Is].
var (
	ErrLex              = errors.New("unrecognized text")
	ErrGrammarMismatch  = errors.New("grammar mismatch")
	ErrUnresolvedSymbol = errors.New("unresolved currency symbol")
	ErrUnresolvedName   = errors.New("unresolved currency name")
	ErrUnknownUnit      = errors.New("unknown duration unit")
	ErrNoSegments       = errors.New("no duration segments")
	ErrOverflow         = errors.New("overflow")
)

// ParseError describes a failure to parse a quantity.
// Pos is the byte offset of the offending text within the input,
// or the length of the input if the input ended unexpectedly.
type ParseError struct {
	Kind error  // one of the Err* kinds
	Pos  int    // byte offset
	Text string // offending text, empty at the end of input
}

func newParseError(kind error, pos int, text string) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Text: text}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%v at position %d: unexpected end of input", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%v at position %d: %q", e.Kind, e.Pos, e.Text)
}

// Unwrap returns the kind of the error.
func (e *ParseError) Unwrap() error {
	return e.Kind
}
