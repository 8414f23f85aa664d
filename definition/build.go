package definition

import (
	"context"
	"fmt"

	"github.com/grovetools/pick/command"
	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/menu"
)

// Build constructs a runnable menu from the definition. Option commands are
// executed through runner; a nil runner gets the default one.
func (d *Definition) Build(runner *command.Runner) (*menu.Menu, error) {
	if runner == nil {
		runner = command.NewRunner()
	}

	m := menu.New(d.Title)
	switch d.Mode {
	case "", ModeExpanded:
		m.SetMode(menu.Expanded)
	case ModeCollapsed:
		m.SetMode(menu.Collapsed)
	default:
		return nil, errors.New(errors.ErrCodeDefinitionValidation,
			fmt.Sprintf("unknown mode %q", d.Mode))
	}
	if d.ClearScreen != nil {
		m.SetClearScreen(*d.ClearScreen)
	}
	if d.IncludeExit != nil {
		m.SetIncludeExit(*d.IncludeExit)
	}

	if err := addItems(m, runner, d.Items, nil); err != nil {
		return nil, err
	}
	return m, nil
}

func addItems(m *menu.Menu, runner *command.Runner, items []Item, parent *menu.Folder) error {
	for _, item := range items {
		switch {
		case item.Separator:
			if _, err := m.AddSeparator(parent); err != nil {
				return err
			}
		case item.Folder != "":
			folder, err := m.SetFolder(item.Folder, parent)
			if err != nil {
				return err
			}
			if err := addItems(m, runner, item.Items, folder); err != nil {
				return err
			}
		case item.Option != "":
			if _, err := m.AddOption(item.Option, runAction(runner, item.Run), parent); err != nil {
				return err
			}
		}
	}
	return nil
}

// runAction adapts a run string into a menu action. Options without a run
// string get a nil action, which the menu treats as a no-op.
func runAction(runner *command.Runner, run string) menu.Action {
	if run == "" {
		return nil
	}
	return func() {
		if err := runner.Run(context.Background(), run); err != nil {
			log.WithError(err).WithField("command", run).Error("Option command failed")
			fmt.Fprintln(runner.Stderr, err)
		}
	}
}
