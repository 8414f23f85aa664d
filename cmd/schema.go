package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/pick/config"
	"github.com/grovetools/pick/definition"
)

// NewSchemaCmd creates the schema command
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the menu definition JSON Schema",
		Long: `Prints the JSON Schema that validates menu definition files. Point
your editor's yaml language server at it for completion and inline
diagnostics.

Examples:
  # Write the definition schema next to your menus
  pick schema > pick-definition.schema.json

  # Print the pick.yml configuration schema instead
  pick schema --config-schema`,
		Args: cobra.NoArgs,
		RunE: runSchemaE,
	}
	cmd.Flags().Bool("config-schema", false, "Print the pick.yml configuration schema instead")
	return cmd
}

func runSchemaE(cmd *cobra.Command, args []string) error {
	generate := definition.GenerateSchema
	if configSchema, _ := cmd.Flags().GetBool("config-schema"); configSchema {
		generate = config.GenerateSchema
	}
	data, err := generate()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
