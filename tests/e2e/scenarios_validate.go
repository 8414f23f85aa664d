package main

import (
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ValidateValidScenario checks that a well-formed definition passes.
func ValidateValidScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-validate-valid",
		Description: "Verifies that a well-formed yaml definition validates cleanly.",
		Tags:        []string{"pick", "validate"},
		Steps: []harness.Step{
			harness.NewStep("Validate a correct definition", func(ctx *harness.Context) error {
				menuDir := ctx.NewDir("menus")
				menuYAML := `title: Pizzeria
mode: collapsed
items:
  - option: Order margherita
    run: echo "one margherita coming up"
  - separator: true
  - folder: Drinks
    items:
      - option: Tea
        run: echo tea
`
				menuPath := filepath.Join(menuDir, "pizzeria.yml")
				if err := fs.WriteString(menuPath, menuYAML); err != nil {
					return err
				}

				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "validate", menuPath)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "validate should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "valid menu definition", "Output should confirm the definition")
			}),
		},
	}
}

// ValidateInvalidScenario checks that structural item errors are reported.
func ValidateInvalidScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-validate-invalid",
		Description: "Verifies that an item declaring two kinds fails validation with a path.",
		Tags:        []string{"pick", "validate"},
		Steps: []harness.Step{
			harness.NewStep("Validate an item with two kinds", func(ctx *harness.Context) error {
				menuDir := ctx.NewDir("menus")
				menuYAML := `title: Broken
items:
  - option: Order
    folder: AlsoAFolder
`
				menuPath := filepath.Join(menuDir, "broken.yml")
				if err := fs.WriteString(menuPath, menuYAML); err != nil {
					return err
				}

				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "validate", menuPath)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "validate should fail"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stderr, "is not valid", "Stderr should report the validation failure"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "exactly one of", "Stderr should name the item rule")
			}),
			harness.NewStep("Validate a missing file", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "validate", "no-such-menu.yml")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "validate should fail for a missing file"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "not found", "Stderr should report the missing file")
			}),
		},
	}
}

// ValidateJSONScenario checks the machine-readable error report.
func ValidateJSONScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-validate-json",
		Description: "Verifies that --json emits the structured error for an invalid definition.",
		Tags:        []string{"pick", "validate", "json"},
		Steps: []harness.Step{
			harness.NewStep("Validate a titleless definition with --json", func(ctx *harness.Context) error {
				menuDir := ctx.NewDir("menus")
				menuYAML := `items:
  - option: Order
    run: echo hi
`
				menuPath := filepath.Join(menuDir, "untitled.yml")
				if err := fs.WriteString(menuPath, menuYAML); err != nil {
					return err
				}

				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "validate", menuPath, "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "validate should fail"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "DEFINITION_VALIDATION", "JSON report should carry the error code"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "title", "JSON report should name the missing property")
			}),
		},
	}
}
