package pad

// Ellipsis is the marker that ends text truncated with UseEllipsis.
const Ellipsis = "..."

// MinEllipsisWidth is the smallest width that holds one character of text
// plus the ellipsis.
const MinEllipsisWidth = len(Ellipsis) + 1

// DefaultPadChar is the filler used when Rules.PadChar is zero.
const DefaultPadChar byte = ' '

// Rules controls how text is fitted to a width.
// Rules is a plain value; it is never modified by Right or Left and may be
// shared between goroutines.
type Rules struct {
	// PadChar fills the space around short text. Zero means DefaultPadChar.
	PadChar byte

	// Truncate allows Right to shorten text longer than the width.
	Truncate bool

	// UseEllipsis ends truncated text with Ellipsis.
	UseEllipsis bool
}

// DefaultRules returns space padding with plain truncation.
func DefaultRules() Rules {
	return Rules{
		PadChar:     DefaultPadChar,
		Truncate:    true,
		UseEllipsis: false,
	}
}

// WithPadChar returns a copy of the rules with the specified pad character.
func (r Rules) WithPadChar(c byte) Rules {
	r.PadChar = c
	return r
}

// WithTruncate returns a copy of the rules with truncation enabled or disabled.
func (r Rules) WithTruncate(truncate bool) Rules {
	r.Truncate = truncate
	return r
}

// WithEllipsis returns a copy of the rules with the ellipsis enabled or disabled.
func (r Rules) WithEllipsis(useEllipsis bool) Rules {
	r.UseEllipsis = useEllipsis
	return r
}

// Filler returns the byte used for padding.
func (r Rules) Filler() byte {
	if r.PadChar == 0 {
		return DefaultPadChar
	}
	return r.PadChar
}
