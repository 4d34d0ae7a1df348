package scatter3d

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCoordinateLine matches every *MalformedLineError.
	ErrMalformedCoordinateLine = errors.New("malformed coordinate line")

	// ErrUnexpectedEndOfInput is returned when the input closes before the
	// empty terminator line.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input: no empty line before end of stream")
)

// MalformedLineError describes a non-empty line that did not yield three
// numbers in its first three space-separated fields.
type MalformedLineError struct {
	Line int // 1-based, 0 when parsed outside a reader
	Text string
	Err  error
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %q: %v: %v", e.Line, e.Text, ErrMalformedCoordinateLine, e.Err)
	}
	return fmt.Sprintf("%q: %v: %v", e.Text, ErrMalformedCoordinateLine, e.Err)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedCoordinateLine
}
