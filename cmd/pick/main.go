package main

import (
	"os"

	"github.com/grovetools/pick/cli"
	"github.com/grovetools/pick/cmd"
	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/tui"
	"github.com/grovetools/pick/version"
)

func main() {
	tui.Initialize()

	rootCmd := cli.NewStandardCommand(
		"pick",
		"Hierarchical terminal menus from declarative definitions",
	)
	rootCmd.Long = `pick builds navigable terminal menus from yaml or toml definition
files. Menus nest folders of options, number their entries in expanded
or collapsed form and execute a shell command for the chosen option.`

	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	rootCmd.AddCommand(
		cmd.NewRunCmd(),
		cmd.NewValidateCmd(),
		cmd.NewSchemaCmd(),
		cmd.NewVersionCmd(),
	)

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// Handlers report pick errors themselves; cobra's own errors
		// (flag typos, unknown subcommands) are still unreported here.
		if errors.GetCode(err) == "" {
			cli.PrintError(rootCmd, err)
		}
		os.Exit(1)
	}
}
