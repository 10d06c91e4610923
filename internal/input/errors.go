package input

import (
	"errors"
	"fmt"
)

// Domain errors for input acquisition.
var (
	// ErrEmpty indicates no values were supplied.
	ErrEmpty = errors.New("input: no values")

	// ErrTooMany indicates more values than the algorithm's cap.
	ErrTooMany = errors.New("input: too many values")

	// ErrBadToken indicates a token that is not an integer.
	ErrBadToken = errors.New("input: not an integer")
)

// ParseError wraps a parse failure with the offending token.
type ParseError struct {
	Pos     int
	Token   string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input: value %d (%q): %v", e.Pos+1, e.Token, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
