package padconfig

import "github.com/invopop/jsonschema"

// SchemaID identifies the configuration file schema.
const SchemaID = "https://github.com/randalmurphal/padkit/padconfig/file.schema.json"

// Schema returns the JSON Schema describing File.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&File{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "padkit configuration"
	s.Description = "Pad rules and fixed-width record layout"
	return s
}
