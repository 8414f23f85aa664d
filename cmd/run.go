package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/pick/cli"
	"github.com/grovetools/pick/command"
	"github.com/grovetools/pick/config"
	"github.com/grovetools/pick/definition"
	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/logging"
	"github.com/grovetools/pick/menu"
	"github.com/grovetools/pick/tui/teaprompt"
	"github.com/grovetools/pick/tui/termio"
	"github.com/grovetools/pick/tui/theme"
	"github.com/grovetools/pick/util/pathutil"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run the menu described by a definition file",
		Long: `Loads a yaml or toml menu definition, builds the menu and runs the
interactive selection loop on the terminal. Option commands execute
through 'sh -c' with the terminal's streams.

Settings layer up in order: pick.yml menu defaults, then the definition
file, then flags.

Examples:
  # Run a menu
  pick run pizzeria.yml

  # Force collapsed navigation and keep the screen between renders
  pick run pizzeria.yml --collapsed --no-clear

  # Full-screen front-end with a theme override
  pick run pizzeria.yml --tui --theme gruvbox

  # Rebuild the menu whenever the file changes
  pick run pizzeria.yml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: runRunE,
	}

	cmd.Flags().Bool("collapsed", false, "Show one folder level at a time")
	cmd.Flags().Bool("expanded", false, "Show the whole tree at once")
	cmd.Flags().Bool("no-clear", false, "Never clear the screen between renders")
	cmd.Flags().String("theme", "", "Color theme (kanagawa/gruvbox/terminal)")
	cmd.Flags().Bool("tui", false, "Render through the full-screen TUI")
	cmd.Flags().Bool("watch", false, "Reload the definition when the file changes")
	cmd.Flags().Duration("timeout", command.DefaultTimeout, "Timeout for option commands")

	return cmd
}

func runRunE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	log := cli.GetLogger(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)

	path, err := pathutil.Expand(args[0])
	if err != nil {
		return handler.Handle(err)
	}

	collapsed, _ := cmd.Flags().GetBool("collapsed")
	expanded, _ := cmd.Flags().GetBool("expanded")
	if collapsed && expanded {
		return handler.Handle(errors.New(errors.ErrCodeInvalidInput, "--collapsed and --expanded are mutually exclusive"))
	}

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}

	themeName, _ := cmd.Flags().GetString("theme")
	if themeName == "" {
		themeName = cfg.Theme
	}
	th := theme.DefaultTheme
	if themeName != "" {
		if !theme.Known(themeName) {
			return handler.Handle(errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unknown theme %q", themeName)))
		}
		th = theme.NewThemeWithName(themeName)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	runner := command.NewRunner().WithTimeout(timeout)

	term := newTerminal(cmd, th)

	var watcher *definitionWatcher
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		watcher, err = newDefinitionWatcher(path)
		if err != nil {
			return handler.Handle(errors.Wrap(err, errors.ErrCodeInternal, fmt.Sprintf("cannot watch %s", path)))
		}
		defer watcher.Close()
	}

	for {
		def, err := definition.Load(path)
		if err != nil {
			return handler.Handle(err)
		}
		applyMenuDefaults(def, cfg.Menu)

		m, err := def.Build(runner)
		if err != nil {
			return handler.Handle(err)
		}
		applyFlags(cmd, m)

		log.WithField("path", path).Debug("Showing menu")
		if err := m.Show(term); err != nil {
			return handler.Handle(err)
		}
		if watcher == nil {
			return nil
		}

		// Stay alive until the file changes, then rebuild and show again.
		// A change that arrived while the menu was running is already
		// buffered and reloads immediately.
		logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).
			InfoPretty(fmt.Sprintf("Watching %s; press ctrl+c to stop.", path))
		if _, ok := <-watcher.Changes(); !ok {
			return nil
		}
	}
}

// newTerminal builds the front-end selected by --tui.
func newTerminal(cmd *cobra.Command, th *theme.Theme) menu.Terminal {
	if tui, _ := cmd.Flags().GetBool("tui"); tui {
		return teaprompt.New(teaprompt.Config{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Theme: th})
	}
	return termio.New(termio.Config{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Theme: th})
}

// applyMenuDefaults fills definition fields the file left unset from the
// pick.yml menu defaults.
func applyMenuDefaults(def *definition.Definition, mc *config.MenuConfig) {
	if mc == nil {
		return
	}
	if def.Mode == "" {
		def.Mode = mc.Mode
	}
	if def.ClearScreen == nil {
		def.ClearScreen = mc.ClearScreen
	}
	if def.IncludeExit == nil {
		def.IncludeExit = mc.IncludeExit
	}
}

// applyFlags overrides the built menu with any presentation flags.
func applyFlags(cmd *cobra.Command, m *menu.Menu) {
	if collapsed, _ := cmd.Flags().GetBool("collapsed"); collapsed {
		m.SetMode(menu.Collapsed)
	}
	if expanded, _ := cmd.Flags().GetBool("expanded"); expanded {
		m.SetMode(menu.Expanded)
	}
	if noClear, _ := cmd.Flags().GetBool("no-clear"); noClear {
		m.SetClearScreen(false)
	}
}
