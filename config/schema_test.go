package config

import (
	"encoding/json"
	"testing"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	if err != nil {
		t.Fatal(err)
	}

	// Verify it's valid JSON
	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("generated schema is not valid JSON: %v", err)
	}

	// Verify it contains expected top-level keys
	expectedKeys := []string{"$schema", "type", "title", "description", "properties"}
	for _, key := range expectedKeys {
		if _, ok := parsed[key]; !ok {
			t.Errorf("expected key '%s' in schema", key)
		}
	}

	if parsed["$schema"] != "http://json-schema.org/draft-07/schema#" {
		t.Errorf("expected JSON Schema draft-07, got %v", parsed["$schema"])
	}

	// Test properties exist
	props, ok := parsed["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("expected properties to be an object")
	}

	for _, prop := range []string{"version", "theme", "menu"} {
		if _, ok := props[prop]; !ok {
			t.Errorf("expected '%s' property", prop)
		}
	}

	// The menu.mode property restricts values to the two numbering modes
	menu, ok := props["menu"].(map[string]interface{})
	if !ok {
		t.Fatal("expected menu property to be an object")
	}
	menuProps, ok := menu["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("expected menu to have properties")
	}
	mode, ok := menuProps["mode"].(map[string]interface{})
	if !ok {
		t.Fatal("expected menu.mode property")
	}
	enum, ok := mode["enum"].([]interface{})
	if !ok || len(enum) != 2 {
		t.Fatalf("expected menu.mode enum with two values, got %v", mode["enum"])
	}
}
