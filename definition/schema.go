package definition

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for menu definition files by
// reflecting the Definition type. Item is self-referential, so the schema
// keeps $defs references instead of expanding in place.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Definition{})
	schema.Title = "Pick Menu Definition"
	schema.Description = "Schema for pick menu definition files."

	return json.MarshalIndent(schema, "", "  ")
}
