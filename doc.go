// Package padkit fits text into fixed-width columns.
//
// padkit is a small toolkit for fixed-width output, designed to be
// imported à la carte. Each subpackage can be used independently:
//
//   - pad: pad or truncate a string to an exact width
//   - fixedwidth: format and split fixed-width records
//   - padconfig: load rules and layouts from YAML, TOML or JSON files
//
// # Quick Start
//
// Padding:
//
//	import "github.com/randalmurphal/padkit/pad"
//	s, err := pad.Right("hello", 8, pad.DefaultRules()) // "hello   "
//
// Records:
//
//	import "github.com/randalmurphal/padkit/fixedwidth"
//	layout := fixedwidth.NewLayout(
//	    fixedwidth.Column{Name: "id", Width: 4, Align: fixedwidth.AlignRight},
//	    fixedwidth.Column{Name: "name", Width: 8},
//	)
//	line, err := layout.Format("7", "gopher") // "   7gopher  "
//
// Configuration:
//
//	import "github.com/randalmurphal/padkit/padconfig"
//	f, err := padconfig.Load("layout.yaml")
//	layout, err := f.Layout()
//
// # Design Philosophy
//
//   - Every successful call returns exactly the requested width
//   - Errors are values; nothing panics on bad input
//   - Lengths are byte counts, not display width
//   - The pad package depends only on the standard library
package padkit
