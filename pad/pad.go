package pad

import "strings"

// Right pads text on the right to exactly width bytes.
//
// Text longer than width is truncated when rules.Truncate is set. With
// rules.UseEllipsis the result keeps width-3 bytes of text followed by
// Ellipsis; otherwise it keeps width-1 bytes followed by one pad character.
func Right(text string, width int, rules Rules) (string, error) {
	if width < 0 {
		return "", newError(OpRight, text, width, ErrInvalidWidth)
	}

	fill := rules.Filler()
	var sb strings.Builder
	sb.Grow(width)

	if len(text) <= width {
		sb.WriteString(text)
		writeFill(&sb, fill, width-len(text))
		return sb.String(), nil
	}

	if !rules.Truncate {
		return "", newError(OpRight, text, width, ErrOverflow)
	}
	if rules.UseEllipsis && width < MinEllipsisWidth {
		return "", newError(OpRight, text, width, ErrDoesNotFit)
	}

	switch {
	case rules.UseEllipsis:
		sb.WriteString(text[:width-len(Ellipsis)])
		sb.WriteString(Ellipsis)
	case width > 0:
		// One byte short of the width; the gap is filled below.
		sb.WriteString(text[:width-1])
	}

	writeFill(&sb, fill, width-sb.Len())
	return sb.String(), nil
}

// Left pads text on the left to exactly width bytes.
// Left never truncates: text longer than width returns ErrOverflow whatever
// rules.Truncate says.
func Left(text string, width int, rules Rules) (string, error) {
	if width < 0 {
		return "", newError(OpLeft, text, width, ErrInvalidWidth)
	}
	if len(text) > width {
		return "", newError(OpLeft, text, width, ErrOverflow)
	}

	var sb strings.Builder
	sb.Grow(width)
	writeFill(&sb, rules.Filler(), width-len(text))
	sb.WriteString(text)
	return sb.String(), nil
}

func writeFill(sb *strings.Builder, c byte, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(c)
	}
}
