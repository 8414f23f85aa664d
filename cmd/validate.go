package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/pick/cli"
	"github.com/grovetools/pick/definition"
	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/logging"
	"github.com/grovetools/pick/util/pathutil"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a menu definition file",
		Long: `Parses a yaml or toml menu definition and checks it against the
definition schema and the structural item rules, without running the
menu.

Examples:
  # Check a definition
  pick validate pizzeria.yml

  # Machine-readable report
  pick validate pizzeria.yml --json`,
		Args: cobra.ExactArgs(1),
		RunE: runValidateE,
	}
	return cmd
}

func runValidateE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)

	path, err := pathutil.Expand(args[0])
	if err != nil {
		return cli.NewErrorHandler(opts.Verbose).Handle(err)
	}

	if _, err := definition.Load(path); err != nil {
		if opts.JSONOutput {
			if pickErr, ok := err.(*errors.PickError); ok {
				fmt.Fprintln(cmd.OutOrStdout(), pickErr.ToJSON())
				return err
			}
		}
		return cli.NewErrorHandler(opts.Verbose).Handle(err)
	}

	if opts.JSONOutput {
		out, err := json.Marshal(map[string]interface{}{"valid": true, "path": path})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).
		Success(fmt.Sprintf("%s is a valid menu definition", path))
	return nil
}
