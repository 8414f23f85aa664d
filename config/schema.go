package config

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the pick configuration.
// It reflects the Config struct from types.go but excludes the 'Extensions'
// field; extension sections are free-form and validated by their owners.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Extensions may add arbitrary top-level keys, so unknown
		// properties have to stay legal.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref so the schema
		// is self-contained for embedding.
		ExpandedStruct: true,
		DoNotReference: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	// Create a temporary struct that omits the Extensions field
	// so it's not included in the schema.
	type BaseConfig struct {
		Version string      `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
		Theme   string      `yaml:"theme,omitempty" jsonschema:"description=Color theme name (kanagawa/gruvbox/terminal)"`
		Menu    *MenuConfig `yaml:"menu,omitempty" jsonschema:"description=Default menu presentation settings"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Pick Configuration"
	schema.Description = "Schema for pick.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
