package store

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error caused by structurally malformed
// input: empty text, a missing or extra dash, a start after the end, or an
// unknown colour.
var ErrInvalidArgument = errors.New("invalid argument")

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// ParseError is returned when some text which should be a base-10 integer is
// not one.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid index: %q", e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OutOfRangeError is returned when an index parses fine but falls outside of
// [0, Max].
type OutOfRangeError struct {
	Index int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index out of bounds: %d (max index: %d)", e.Index, e.Max)
}
