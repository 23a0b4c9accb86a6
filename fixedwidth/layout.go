package fixedwidth

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/padkit/pad"
)

// Align selects which side of a column the text sits on.
type Align int

const (
	// AlignLeft puts text first and padding after it (pad.Right).
	AlignLeft Align = iota

	// AlignRight puts padding first and text after it (pad.Left).
	AlignRight
)

// String returns "left" or "right".
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Column describes one field of a record.
type Column struct {
	Name  string
	Width int
	Align Align

	// Rules overrides the layout rules for this column when non-nil.
	Rules *pad.Rules
}

// Layout is an ordered set of columns making up a fixed-width record.
type Layout struct {
	Columns   []Column
	Separator string
	Rules     pad.Rules
}

// NewLayout creates a layout with default pad rules and no separator.
func NewLayout(columns ...Column) *Layout {
	return &Layout{
		Columns: columns,
		Rules:   pad.DefaultRules(),
	}
}

// WithSeparator returns a copy of the layout joined by sep.
func (l *Layout) WithSeparator(sep string) *Layout {
	c := l.clone()
	c.Separator = sep
	return c
}

// WithRules returns a copy of the layout with the specified default rules.
func (l *Layout) WithRules(rules pad.Rules) *Layout {
	c := l.clone()
	c.Rules = rules
	return c
}

func (l *Layout) clone() *Layout {
	c := *l
	c.Columns = append([]Column(nil), l.Columns...)
	return &c
}

// Validate checks that the layout can format records.
func (l *Layout) Validate() error {
	if len(l.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidLayout)
	}
	seen := make(map[string]bool, len(l.Columns))
	for i, col := range l.Columns {
		if col.Width < 0 {
			return fmt.Errorf("%w: column %d width must be >= 0, got %d", ErrInvalidLayout, i, col.Width)
		}
		if col.Align != AlignLeft && col.Align != AlignRight {
			return fmt.Errorf("%w: column %d has unknown alignment %v", ErrInvalidLayout, i, col.Align)
		}
		if col.Name == "" {
			continue
		}
		if seen[col.Name] {
			return fmt.Errorf("%w: duplicate column name %q", ErrInvalidLayout, col.Name)
		}
		seen[col.Name] = true
	}
	return nil
}

// Width returns the length of every record produced by Format.
func (l *Layout) Width() int {
	width := 0
	for _, col := range l.Columns {
		width += col.Width
	}
	if len(l.Columns) > 1 {
		width += len(l.Separator) * (len(l.Columns) - 1)
	}
	return width
}

// Format pads one value per column and joins them into a record.
func (l *Layout) Format(values ...string) (string, error) {
	if len(values) != len(l.Columns) {
		return "", fmt.Errorf("%w: got %d values for %d columns", ErrFieldCount, len(values), len(l.Columns))
	}

	var sb strings.Builder
	sb.Grow(l.Width())

	for i, col := range l.Columns {
		if i > 0 {
			sb.WriteString(l.Separator)
		}
		field, err := l.fit(col, values[i])
		if err != nil {
			return "", &ColumnError{Index: i, Column: col.Name, Err: err}
		}
		sb.WriteString(field)
	}

	return sb.String(), nil
}

// Header formats the column names as a record.
func (l *Layout) Header() (string, error) {
	names := make([]string, len(l.Columns))
	for i, col := range l.Columns {
		names[i] = col.Name
	}
	return l.Format(names...)
}

// FormatAll formats every row, stopping at the first failure.
func (l *Layout) FormatAll(rows [][]string) ([]string, error) {
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		line, err := l.Format(row...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Split cuts a record produced by Format back into its values.
// Padding is trimmed from the padded side of each column, so a value that
// itself begins (right-aligned) or ends (left-aligned) with the pad character
// loses those bytes: "007" in a zero-padded column splits back to "7".
func (l *Layout) Split(line string) ([]string, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(line) != l.Width() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRecordLength, len(line), l.Width())
	}

	values := make([]string, len(l.Columns))
	offset := 0
	for i, col := range l.Columns {
		if i > 0 {
			offset += len(l.Separator)
		}
		field := line[offset : offset+col.Width]
		offset += col.Width

		fill := l.rulesFor(col).Filler()
		if col.Align == AlignRight {
			values[i] = trimLeftByte(field, fill)
		} else {
			values[i] = trimRightByte(field, fill)
		}
	}
	return values, nil
}

func (l *Layout) fit(col Column, value string) (string, error) {
	rules := l.rulesFor(col)
	if col.Align == AlignRight {
		return pad.Left(value, col.Width, rules)
	}
	return pad.Right(value, col.Width, rules)
}

func (l *Layout) rulesFor(col Column) pad.Rules {
	if col.Rules != nil {
		return *col.Rules
	}
	return l.Rules
}

func trimLeftByte(s string, c byte) string {
	i := 0
	for i < len(s) && s[i] == c {
		i++
	}
	return s[i:]
}

func trimRightByte(s string, c byte) string {
	i := len(s)
	for i > 0 && s[i-1] == c {
		i--
	}
	return s[:i]
}
