// Package pad fits text into a fixed number of columns.
//
// Every successful call returns a string whose length is exactly the
// requested width: short text is filled with a pad character, long text is
// truncated or rejected according to the Rules.
//
// # Basic Usage
//
// Pad on the right (text first, filler after):
//
//	s, err := pad.Right("hello", 8, pad.DefaultRules()) // "hello   "
//
// Pad on the left (filler first, text after):
//
//	s, err := pad.Left("42", 6, pad.DefaultRules().WithPadChar('0')) // "000042"
//
// # Truncation
//
// Only Right truncates. With the default rules, overflowing text keeps
// width-1 characters followed by a single pad character:
//
//	pad.Right("hello world", 5, pad.DefaultRules()) // "hell "
//
// With an ellipsis, the last three columns become "...":
//
//	pad.Right("hello world", 6, pad.DefaultRules().WithEllipsis(true)) // "hel..."
//
// Left never truncates and returns ErrOverflow instead.
//
// # Errors
//
// Failures are returned as *Error, which unwraps to one of the sentinel
// errors:
//
//	if errors.Is(err, pad.ErrOverflow) { ... }
//
// # Length
//
// Lengths are byte counts, the native code unit of a Go string. Display
// width, graphemes and runes are not considered, so truncating multi-byte
// UTF-8 text may split a character.
//
// A zero PadChar means a space, so the NUL byte cannot be used as filler.
package pad
