// Package padconfig loads pad rules and fixed-width layouts from files.
//
// YAML, TOML and JSON are supported; the format is chosen by extension:
//
//	# layout.yaml
//	rules:
//	  pad_char: " "
//	  use_ellipsis: true
//	separator: "|"
//	columns:
//	  - name: id
//	    width: 6
//	    align: right
//	  - name: title
//	    width: 20
//
//	f, err := padconfig.Load("layout.yaml")
//	layout, err := f.Layout()
//
// PADKIT_PAD_CHAR, PADKIT_TRUNCATE and PADKIT_USE_ELLIPSIS override the
// file's rules. Schema returns a JSON Schema for editors, and Watch
// reloads the file whenever it changes on disk.
package padconfig
