package padconfig

import (
	"fmt"
	"unicode/utf8"

	"github.com/randalmurphal/padkit/fixedwidth"
	"github.com/randalmurphal/padkit/pad"
)

// File is the on-disk configuration.
type File struct {
	// Rules applies to every column unless the column overrides it.
	Rules RulesSpec `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty" jsonschema:"description=Default pad rules"`

	// Separator is written between columns.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty" toml:"separator,omitempty" jsonschema:"description=Text written between columns"`

	// Columns describes the record layout. Optional when only rules are needed.
	Columns []ColumnSpec `json:"columns,omitempty" yaml:"columns,omitempty" toml:"columns,omitempty" jsonschema:"description=Ordered record columns"`
}

// RulesSpec is the file form of pad.Rules. Unset fields keep the base value.
type RulesSpec struct {
	PadChar     string `json:"pad_char,omitempty" yaml:"pad_char,omitempty" toml:"pad_char,omitempty" jsonschema:"minLength=1,maxLength=1,description=Single ASCII filler character"`
	Truncate    *bool  `json:"truncate,omitempty" yaml:"truncate,omitempty" toml:"truncate,omitempty" jsonschema:"description=Allow overflowing text to be shortened"`
	UseEllipsis *bool  `json:"use_ellipsis,omitempty" yaml:"use_ellipsis,omitempty" toml:"use_ellipsis,omitempty" jsonschema:"description=End truncated text with ..."`
}

// ColumnSpec is the file form of fixedwidth.Column.
type ColumnSpec struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Width int        `json:"width" yaml:"width" toml:"width" jsonschema:"minimum=0"`
	Align string     `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty" jsonschema:"enum=left,enum=right"`
	Rules *RulesSpec `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}

// Apply overlays the set fields of s onto base.
func (s RulesSpec) Apply(base pad.Rules) (pad.Rules, error) {
	if s.PadChar != "" {
		if len(s.PadChar) != 1 || s.PadChar[0] >= utf8.RuneSelf {
			return base, fmt.Errorf("%w, got %q", ErrInvalidPadChar, s.PadChar)
		}
		base = base.WithPadChar(s.PadChar[0])
	}
	if s.Truncate != nil {
		base = base.WithTruncate(*s.Truncate)
	}
	if s.UseEllipsis != nil {
		base = base.WithEllipsis(*s.UseEllipsis)
	}
	return base, nil
}

// PadRules returns the file's rules applied over pad.DefaultRules.
func (f *File) PadRules() (pad.Rules, error) {
	return f.Rules.Apply(pad.DefaultRules())
}

// Layout builds and validates the fixed-width layout described by the file.
func (f *File) Layout() (*fixedwidth.Layout, error) {
	rules, err := f.PadRules()
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	columns := make([]fixedwidth.Column, len(f.Columns))
	for i, spec := range f.Columns {
		col, err := spec.column(rules)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		columns[i] = col
	}

	layout := fixedwidth.NewLayout(columns...).WithSeparator(f.Separator).WithRules(rules)
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

func (s ColumnSpec) column(base pad.Rules) (fixedwidth.Column, error) {
	col := fixedwidth.Column{Name: s.Name, Width: s.Width}

	switch s.Align {
	case "", "left":
		col.Align = fixedwidth.AlignLeft
	case "right":
		col.Align = fixedwidth.AlignRight
	default:
		return col, fmt.Errorf("%w, got %q", ErrInvalidAlign, s.Align)
	}

	if s.Rules != nil {
		rules, err := s.Rules.Apply(base)
		if err != nil {
			return col, err
		}
		col.Rules = &rules
	}
	return col, nil
}
