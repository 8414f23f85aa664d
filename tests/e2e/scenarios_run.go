package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/tui"
)

// RunExpandedScenario runs a menu in expanded mode and selects a nested
// option by its composite number.
func RunExpandedScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-run-expanded",
		Description: "Renders the whole tree with composite numbering and runs a nested option.",
		Tags:        []string{"pick", "run", "interactive"},
		LocalOnly:   true, // interactive tests require tmux
		Steps: []harness.Step{
			harness.NewStep("Write menu definition", func(ctx *harness.Context) error {
				menuYAML := `title: Pizzeria
clear_screen: false
items:
  - option: Order margherita
    run: echo "one margherita coming up"
  - separator: true
  - folder: Drinks
    items:
      - option: Tea
        run: echo "a cup of tea"
      - option: Lemonade
`
				return fs.WriteString(filepath.Join(ctx.RootDir, "pizzeria.yml"), menuYAML)
			}),
			harness.NewStep("Launch the menu", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(pickBinary, []string{"run", "pizzeria.yml"})
				if err != nil {
					return fmt.Errorf("failed to start menu: %w", err)
				}
				ctx.Set("menu_session", session)
				return nil
			}),
			harness.NewStep("Verify the whole tree renders", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.WaitForText("=== Pizzeria ===", 10*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("menu did not render: %w\nContent: %s", err, content)
				}
				if err := session.AssertContains("1. Order margherita"); err != nil {
					return err
				}
				if err := session.AssertContains("2. [Drinks]"); err != nil {
					return err
				}
				if err := session.AssertContains("2.1. Tea"); err != nil {
					return err
				}
				if err := session.AssertContains("2.2. Lemonade"); err != nil {
					return err
				}
				if err := session.AssertContains("3. Exit"); err != nil {
					return err
				}
				return session.AssertContains("Select an option:")
			}),
			harness.NewStep("Select a nested option by composite number", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("2.1"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				return session.WaitForText("a cup of tea", 5*time.Second)
			}),
			harness.NewStep("Exit by keyword", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("exit"); err != nil {
					return err
				}
				return session.SendKeys("Enter")
			}),
		},
	}
}

// RunCollapsedNavigationScenario walks into a folder and back out in
// collapsed mode.
func RunCollapsedNavigationScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-run-collapsed",
		Description: "Navigates folder levels with per-level numbering, Back and the breadcrumb.",
		Tags:        []string{"pick", "run", "interactive"},
		LocalOnly:   true,
		Steps: []harness.Step{
			harness.NewStep("Write menu definition", func(ctx *harness.Context) error {
				menuYAML := `title: Pizzeria
mode: collapsed
clear_screen: false
items:
  - option: Order margherita
    run: echo "one margherita coming up"
  - folder: Drinks
    items:
      - option: Tea
        run: echo "a cup of tea"
      - option: Lemonade
  - folder: Desserts
`
				return fs.WriteString(filepath.Join(ctx.RootDir, "pizzeria.yml"), menuYAML)
			}),
			harness.NewStep("Launch the menu", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(pickBinary, []string{"run", "pizzeria.yml"})
				if err != nil {
					return fmt.Errorf("failed to start menu: %w", err)
				}
				ctx.Set("menu_session", session)
				return nil
			}),
			harness.NewStep("Verify the root level", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.WaitForText("(Current path: ROOT)", 10*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("root level did not render: %w\nContent: %s", err, content)
				}
				if err := session.AssertContains("2. [Drinks]"); err != nil {
					return err
				}
				// The empty folder is marked inline.
				if err := session.AssertContains("3. [Desserts] <empty>"); err != nil {
					return err
				}
				return session.AssertContains("4. Exit")
			}),
			harness.NewStep("Enter the Drinks folder", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("2"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				if err := session.WaitForText("(Current path: Drinks)", 5*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("folder level did not render: %w\nContent: %s", err, content)
				}
				if err := session.AssertContains("0. Back"); err != nil {
					return err
				}
				if err := session.AssertContains("1. Tea"); err != nil {
					return err
				}
				return session.AssertContains("2. Lemonade")
			}),
			harness.NewStep("Go back by keyword", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("back"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				return session.WaitForText("(Current path: ROOT)", 5*time.Second)
			}),
			harness.NewStep("Exit by number", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("4"); err != nil {
					return err
				}
				return session.SendKeys("Enter")
			}),
		},
	}
}

// RunInvalidSelectionScenario checks the notice shown for input that maps
// to no entry.
func RunInvalidSelectionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-run-invalid-selection",
		Description: "Verifies that out-of-range input re-renders the menu with a notice.",
		Tags:        []string{"pick", "run", "interactive"},
		LocalOnly:   true,
		Steps: []harness.Step{
			harness.NewStep("Write menu definition", func(ctx *harness.Context) error {
				menuYAML := `title: Tiny
clear_screen: false
items:
  - option: Only choice
    run: echo chosen
`
				return fs.WriteString(filepath.Join(ctx.RootDir, "tiny.yml"), menuYAML)
			}),
			harness.NewStep("Launch and send an out-of-range number", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(pickBinary, []string{"run", "tiny.yml"})
				if err != nil {
					return fmt.Errorf("failed to start menu: %w", err)
				}
				ctx.Set("menu_session", session)

				if err := session.WaitForText("=== Tiny ===", 10*time.Second); err != nil {
					return err
				}
				if err := session.SendKeys("42"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				return session.WaitForText("Invalid selection!", 5*time.Second)
			}),
			harness.NewStep("Valid selection still works afterwards", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("1"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				if err := session.WaitForText("chosen", 5*time.Second); err != nil {
					return err
				}

				if err := session.SendKeys("exit"); err != nil {
					return err
				}
				return session.SendKeys("Enter")
			}),
		},
	}
}

// RunPauseAfterCommandScenario checks the pause between a command and the
// next redraw when screen clearing is on.
func RunPauseAfterCommandScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-run-pause",
		Description: "Verifies the Enter pause after a command when the screen is cleared between renders.",
		Tags:        []string{"pick", "run", "interactive"},
		LocalOnly:   true,
		Steps: []harness.Step{
			harness.NewStep("Write menu definition", func(ctx *harness.Context) error {
				menuYAML := `title: Pausing
clear_screen: true
items:
  - option: Say hello
    run: echo "hello from the option"
`
				return fs.WriteString(filepath.Join(ctx.RootDir, "pausing.yml"), menuYAML)
			}),
			harness.NewStep("Run the option and observe the pause", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(pickBinary, []string{"run", "pausing.yml"})
				if err != nil {
					return fmt.Errorf("failed to start menu: %w", err)
				}
				ctx.Set("menu_session", session)

				if err := session.WaitForText("=== Pausing ===", 10*time.Second); err != nil {
					return err
				}
				if err := session.SendKeys("1"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				if err := session.WaitForText("hello from the option", 5*time.Second); err != nil {
					return err
				}
				return session.WaitForText("Press Enter to continue...", 5*time.Second)
			}),
			harness.NewStep("Continue and exit", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				if err := session.WaitForText("Select an option:", 5*time.Second); err != nil {
					return err
				}

				if err := session.SendKeys("exit"); err != nil {
					return err
				}
				return session.SendKeys("Enter")
			}),
		},
	}
}
