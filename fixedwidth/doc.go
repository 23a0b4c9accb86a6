// Package fixedwidth formats and splits fixed-width records.
//
// A Layout is an ordered list of columns, each with a width and an
// alignment. Format pads every value into its column with the pad package
// and joins the columns with an optional separator, so every record has
// the same length:
//
//	layout := fixedwidth.NewLayout(
//	    fixedwidth.Column{Name: "id", Width: 6, Align: fixedwidth.AlignRight},
//	    fixedwidth.Column{Name: "name", Width: 10},
//	).WithSeparator("|")
//
//	line, err := layout.Format("42", "gopher") // "    42|gopher    "
//
// Split reverses Format, cutting a record into its fields and trimming the
// padding:
//
//	fields, err := layout.Split(line) // ["42", "gopher"]
//
// Left-aligned columns truncate long values according to the column's
// rules; right-aligned columns reject them with pad.ErrOverflow.
package fixedwidth
