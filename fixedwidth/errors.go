package fixedwidth

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout operations.
var (
	// ErrInvalidLayout is returned by Validate for an unusable layout.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrFieldCount is returned when the number of values does not match
	// the number of columns.
	ErrFieldCount = errors.New("value count does not match column count")

	// ErrRecordLength is returned when a record to split is not exactly
	// the layout width.
	ErrRecordLength = errors.New("record length does not match layout width")
)

// ColumnError wraps a failure to fit a value into a column.
type ColumnError struct {
	Index  int    // Zero-based column position
	Column string // Column name, may be empty
	Err    error  // Underlying error, usually *pad.Error
}

// Error implements the error interface.
func (e *ColumnError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("column %d (%s): %v", e.Index, e.Column, e.Err)
	}
	return fmt.Sprintf("column %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ColumnError) Unwrap() error {
	return e.Err
}
