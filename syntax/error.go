package syntax

import (
	"fmt"
)

// ErrorCode describes why a pattern failed to compile.
type ErrorCode string

const (
	// ErrUnexpectedEnd reports that the pattern ended where more input is
	// required: an empty pattern or alternative, a dangling escape, an
	// unfinished range.
	ErrUnexpectedEnd ErrorCode = "unexpected end of pattern"

	// ErrMissingParen reports a group without its closing ')'.
	ErrMissingParen ErrorCode = "missing closing )"

	// ErrMissingBracket reports a character class without its closing ']'.
	ErrMissingBracket ErrorCode = "missing closing ]"

	// ErrUnexpectedParen reports a ')' with no open group.
	ErrUnexpectedParen ErrorCode = "unexpected )"

	// ErrInternal wraps an unexpected failure during compilation.
	ErrInternal ErrorCode = "internal error"
)

// String returns the human-readable description of the code.
func (c ErrorCode) String() string {
	return string(c)
}

// Error describes a pattern that failed to compile.
//
// Compilation stops at the first error; no partial tree is ever returned.
type Error struct {
	Code     ErrorCode
	Pattern  string
	Offset   int    // byte offset in Pattern where the error was detected
	Expected string // token the parser needed at Offset, if any
	Err      error  // underlying cause for ErrInternal
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("error parsing pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Code)
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
