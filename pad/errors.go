package pad

import (
	"errors"
	"fmt"
)

// Sentinel errors for pad operations.
var (
	// ErrOverflow is returned when the text is longer than the width and
	// no truncation applies.
	ErrOverflow = errors.New("text overflows width")

	// ErrDoesNotFit is returned when ellipsis truncation is requested but the
	// width cannot hold one character plus the ellipsis.
	ErrDoesNotFit = errors.New("width too small for ellipsis")

	// ErrInvalidWidth is returned for a negative width.
	ErrInvalidWidth = errors.New("width must be >= 0")
)

// Operation names reported in Error.Op.
const (
	OpRight = "right"
	OpLeft  = "left"
)

// Error wraps pad errors with the call that produced them.
type Error struct {
	Op    string // OpRight or OpLeft
	Len   int    // Length of the input text
	Width int    // Requested width
	Err   error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pad %s: %v (length %d, width %d)", e.Op, e.Err, e.Len, e.Width)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, text string, width int, err error) *Error {
	return &Error{
		Op:    op,
		Len:   len(text),
		Width: width,
		Err:   err,
	}
}
