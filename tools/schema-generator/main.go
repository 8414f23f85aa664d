// Regenerates the JSON Schemas embedded by the schema package. Run from the
// repository root, typically through go generate.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/pick/config"
	"github.com/grovetools/pick/definition"
)

func main() {
	outputs := []struct {
		name     string
		generate func() ([]byte, error)
	}{
		{"pick.embedded.schema.json", config.GenerateSchema},
		{"definition.embedded.schema.json", definition.GenerateSchema},
	}

	for _, out := range outputs {
		data, err := out.generate()
		if err != nil {
			log.Fatalf("Error generating %s: %v", out.name, err)
		}

		path := filepath.Join("schema", out.name)
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			log.Fatalf("Error writing %s: %v", path, err)
		}

		log.Printf("Successfully generated %s", path)
	}
}
