package padconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/padkit/pad"
)

const yamlConfig = `rules:
  pad_char: "."
  use_ellipsis: true
separator: " "
columns:
  - name: id
    width: 5
    align: right
    rules:
      pad_char: "0"
  - name: title
    width: 8
`

const tomlConfig = `separator = " "

[rules]
pad_char = "."
use_ellipsis = true

[[columns]]
name = "id"
width = 5
align = "right"

[columns.rules]
pad_char = "0"

[[columns]]
name = "title"
width = 8
`

const jsonConfig = `{
  "rules": {"pad_char": ".", "use_ellipsis": true},
  "separator": " ",
  "columns": [
    {"name": "id", "width": 5, "align": "right", "rules": {"pad_char": "0"}},
    {"name": "title", "width": 8}
  ]
}`

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{path: "layout.yaml", expected: FormatYAML},
		{path: "layout.YML", expected: FormatYAML},
		{path: "/etc/padkit/layout.toml", expected: FormatTOML},
		{path: "layout.json", expected: FormatJSON},
		{path: "layout.ini", wantErr: true},
		{path: "layout", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestParse_AllFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "yaml", data: yamlConfig, format: FormatYAML},
		{name: "toml", data: tomlConfig, format: FormatTOML},
		{name: "json", data: jsonConfig, format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, ".", f.Rules.PadChar)
			require.NotNil(t, f.Rules.UseEllipsis)
			assert.True(t, *f.Rules.UseEllipsis)
			assert.Nil(t, f.Rules.Truncate)
			assert.Equal(t, " ", f.Separator)
			require.Len(t, f.Columns, 2)
			assert.Equal(t, "id", f.Columns[0].Name)
			assert.Equal(t, 5, f.Columns[0].Width)
			assert.Equal(t, "right", f.Columns[0].Align)
			require.NotNil(t, f.Columns[0].Rules)
			assert.Equal(t, "0", f.Columns[0].Rules.PadChar)
			assert.Nil(t, f.Columns[1].Rules)

			layout, err := f.Layout()
			require.NoError(t, err)
			line, err := layout.Format("42", "a long title")
			require.NoError(t, err)
			assert.Equal(t, "00042 a lon...", line)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		f, err := Parse(nil, format)
		require.NoError(t, err, "format %s", format)
		assert.Equal(t, &File{}, f)

		rules, err := f.PadRules()
		require.NoError(t, err)
		assert.Equal(t, pad.DefaultRules(), rules)
	}
}

func TestParse_UnknownKeys(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "yaml", data: "rules:\n  padchar: x\n", format: FormatYAML},
		{name: "toml", data: "[rules]\npadchar = \"x\"\n", format: FormatTOML},
		{name: "json", data: `{"rules": {"padchar": "x"}}`, format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("x"), Format("ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Columns, 2)

	rules, err := f.PadRules()
	require.NoError(t, err)
	assert.Equal(t, pad.Rules{PadChar: '.', Truncate: true, UseEllipsis: true}, rules)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PADKIT_PAD_CHAR", "-")
	t.Setenv("PADKIT_USE_ELLIPSIS", "false")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("[rules]\npad_char = \".\"\nuse_ellipsis = true\n"), 0644))

	f, err := Load(path)
	require.NoError(t, err)

	rules, err := f.PadRules()
	require.NoError(t, err)
	assert.Equal(t, pad.Rules{PadChar: '-', Truncate: true, UseEllipsis: false}, rules)
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(filepath.Join(tmpDir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(tmpDir, "layout.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	bad := filepath.Join(tmpDir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}
