package definition

import (
	"strings"
	"testing"

	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/testutil"
)

const pizzeriaYAML = `
title: Pizzeria
mode: collapsed
clear_screen: false
items:
  - option: Order margherita
    run: echo "one margherita"
  - separator: true
  - folder: Drinks
    items:
      - option: Tea
        run: echo tea
      - folder: Cold
        items:
          - option: Lemonade
            run: echo lemonade
`

func TestParseYAML(t *testing.T) {
	def, err := Parse([]byte(pizzeriaYAML), ".yml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Title != "Pizzeria" {
		t.Errorf("Title = %q, want %q", def.Title, "Pizzeria")
	}
	if def.Mode != ModeCollapsed {
		t.Errorf("Mode = %q, want %q", def.Mode, ModeCollapsed)
	}
	if def.ClearScreen == nil || *def.ClearScreen {
		t.Error("ClearScreen should be false")
	}
	if def.IncludeExit != nil {
		t.Error("IncludeExit should be unset")
	}
	if len(def.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(def.Items))
	}
	if def.Items[0].Option != "Order margherita" || def.Items[0].Run != `echo "one margherita"` {
		t.Errorf("Items[0] = %+v", def.Items[0])
	}
	if !def.Items[1].Separator {
		t.Errorf("Items[1] = %+v, want separator", def.Items[1])
	}
	drinks := def.Items[2]
	if drinks.Folder != "Drinks" || len(drinks.Items) != 2 {
		t.Fatalf("Items[2] = %+v", drinks)
	}
	if drinks.Items[1].Folder != "Cold" || drinks.Items[1].Items[0].Option != "Lemonade" {
		t.Errorf("nested folder = %+v", drinks.Items[1])
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
title = "Pizzeria"
mode = "expanded"
include_exit = false

[[items]]
option = "Order"
run = "echo order"

[[items]]
separator = true

[[items]]
folder = "Drinks"

  [[items.items]]
  option = "Tea"
  run = "echo tea"
`)

	def, err := Parse(data, ".toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Title != "Pizzeria" || def.Mode != ModeExpanded {
		t.Errorf("header = %+v", def)
	}
	if def.IncludeExit == nil || *def.IncludeExit {
		t.Error("IncludeExit should be false")
	}
	if len(def.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(def.Items))
	}
	if def.Items[2].Folder != "Drinks" || def.Items[2].Items[0].Option != "Tea" {
		t.Errorf("Items[2] = %+v", def.Items[2])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		ext      string
		wantCode errors.ErrorCode
		wantText string
	}{
		{
			name:     "unsupported extension",
			data:     "title: X",
			ext:      ".ini",
			wantCode: errors.ErrCodeDefinitionInvalid,
			wantText: "unsupported definition format",
		},
		{
			name:     "malformed yaml",
			data:     "title: [unclosed",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionInvalid,
		},
		{
			name:     "unknown field",
			data:     "title: X\ntitel: typo\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionInvalid,
		},
		{
			name:     "missing title",
			data:     "items:\n  - option: A\n    run: echo a\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionValidation,
			wantText: "title",
		},
		{
			name:     "bad mode",
			data:     "title: X\nmode: sideways\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionValidation,
		},
		{
			name:     "item with no kind",
			data:     "title: X\nitems:\n  - run: echo a\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionValidation,
			wantText: "items[0] must set exactly one of option, folder or separator",
		},
		{
			name:     "option and folder on one item",
			data:     "title: X\nitems:\n  - option: A\n    folder: F\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionValidation,
		},
		{
			name:     "run on a folder",
			data:     "title: X\nitems:\n  - folder: F\n    run: echo a\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionValidation,
			wantText: "run only applies to options",
		},
		{
			name:     "children on an option",
			data:     "title: X\nitems:\n  - option: A\n    items:\n      - separator: true\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionValidation,
			wantText: "items only applies to folders",
		},
		{
			name:     "nested kind error names the path",
			data:     "title: X\nitems:\n  - folder: F\n    items:\n      - run: echo a\n",
			ext:      ".yml",
			wantCode: errors.ErrCodeDefinitionValidation,
			wantText: "items[0].items[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			if err == nil {
				t.Fatal("Parse() error = nil, want failure")
			}
			if code := errors.GetCode(err); code != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", code, tt.wantCode)
			}
			if tt.wantText != "" && !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q does not contain %q", err, tt.wantText)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFixture(t, dir, "pizzeria.yml", pizzeriaYAML)

	def, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if def.Title != "Pizzeria" {
		t.Errorf("Title = %q, want %q", def.Title, "Pizzeria")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir + "/nope.yml")
	if code := errors.GetCode(err); code != errors.ErrCodeDefinitionNotFound {
		t.Errorf("GetCode() = %v, want %v", code, errors.ErrCodeDefinitionNotFound)
	}
}

func TestLoadAttachesPath(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFixture(t, dir, "broken.yml", "items:\n  - option: A\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want validation failure")
	}
	pickErr, ok := err.(*errors.PickError)
	if !ok {
		t.Fatalf("error %T is not a *errors.PickError", err)
	}
	if pickErr.Details["path"] != path {
		t.Errorf("Details[path] = %v, want %v", pickErr.Details["path"], path)
	}
}
