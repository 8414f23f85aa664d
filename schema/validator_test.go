package schema

import (
	"strings"
	"testing"
)

func TestConfigValidator(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	t.Run("accepts valid config", func(t *testing.T) {
		data := map[string]interface{}{
			"version": "1.0",
			"theme":   "kanagawa",
			"menu": map[string]interface{}{
				"mode":         "collapsed",
				"clear_screen": true,
			},
		}
		if err := v.Validate(data); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("accepts unknown top level keys", func(t *testing.T) {
		data := map[string]interface{}{
			"version": "1.0",
			"logging": map[string]interface{}{"level": "debug"},
		}
		if err := v.Validate(data); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("rejects bad mode", func(t *testing.T) {
		data := map[string]interface{}{
			"menu": map[string]interface{}{"mode": "sideways"},
		}
		err := v.Validate(data)
		if err == nil {
			t.Fatal("Validate() error = nil, want enum failure")
		}
		if !strings.Contains(err.Error(), "/menu/mode") {
			t.Errorf("error %q does not point at /menu/mode", err)
		}
	})

	t.Run("rejects wrong type", func(t *testing.T) {
		data := map[string]interface{}{"version": 7}
		if err := v.Validate(data); err == nil {
			t.Error("Validate() error = nil, want type failure")
		}
	})
}

func TestDefinitionValidator(t *testing.T) {
	v, err := NewDefinitionValidator()
	if err != nil {
		t.Fatalf("NewDefinitionValidator() error = %v", err)
	}

	t.Run("accepts nested definition", func(t *testing.T) {
		data := map[string]interface{}{
			"title": "Pizzeria",
			"mode":  "expanded",
			"items": []interface{}{
				map[string]interface{}{"option": "Order", "run": "echo order"},
				map[string]interface{}{"separator": true},
				map[string]interface{}{
					"folder": "Drinks",
					"items": []interface{}{
						map[string]interface{}{"option": "Tea", "run": "echo tea"},
					},
				},
			},
		}
		if err := v.Validate(data); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("requires title", func(t *testing.T) {
		err := v.Validate(map[string]interface{}{"items": []interface{}{}})
		if err == nil {
			t.Fatal("Validate() error = nil, want missing title failure")
		}
		if !strings.Contains(err.Error(), "title") {
			t.Errorf("error %q does not mention title", err)
		}
	})

	t.Run("rejects non-array items", func(t *testing.T) {
		data := map[string]interface{}{"title": "X", "items": "nope"}
		err := v.Validate(data)
		if err == nil {
			t.Fatal("Validate() error = nil, want type failure")
		}
		if !strings.Contains(err.Error(), "/items") {
			t.Errorf("error %q does not point at /items", err)
		}
	})

	t.Run("rejects bad nested item type", func(t *testing.T) {
		data := map[string]interface{}{
			"title": "X",
			"items": []interface{}{
				map[string]interface{}{"folder": "F", "items": []interface{}{
					map[string]interface{}{"separator": "yes"},
				}},
			},
		}
		err := v.Validate(data)
		if err == nil {
			t.Fatal("Validate() error = nil, want type failure")
		}
		if !strings.Contains(err.Error(), "/items/0/items/0/separator") {
			t.Errorf("error %q does not point at the nested separator", err)
		}
	})
}
