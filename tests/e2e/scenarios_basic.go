package main

import (
	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/harness"
)

// VersionScenario tests the 'version' command.
func VersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "pick-basic-version",
		Tags: []string{"pick", "basic"},
		Steps: []harness.Step{
			harness.NewStep("Run 'pick version'", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "version")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "pick version should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Version:", "Output should contain Version"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Commit:", "Output should contain Commit"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Build Date:", "Output should contain Build Date")
			}),
			harness.NewStep("Run 'pick version --json'", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "version", "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "pick version --json should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "\"version\"", "JSON output should contain the version field"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "\"platform\"", "JSON output should contain the platform field")
			}),
		},
	}
}

// SchemaScenario tests the 'schema' command for both schemas.
func SchemaScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "pick-basic-schema",
		Tags: []string{"pick", "basic", "schema"},
		Steps: []harness.Step{
			harness.NewStep("Print the definition schema", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "schema")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "pick schema should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "\"$schema\"", "Output should be a JSON Schema"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Pick Menu Definition", "Output should be the definition schema"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "\"items\"", "Definition schema should describe items")
			}),
			harness.NewStep("Print the config schema", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(pickBinary, "schema", "--config-schema")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "pick schema --config-schema should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Pick Configuration", "Output should be the configuration schema")
			}),
		},
	}
}
