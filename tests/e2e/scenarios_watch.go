package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/tui"
)

// WatchReloadScenario verifies that --watch rebuilds the menu from the
// changed file once the previous session ends.
func WatchReloadScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-run-watch",
		Description: "Edits the definition under --watch and expects the rebuilt menu.",
		Tags:        []string{"pick", "run", "watch", "interactive"},
		LocalOnly:   true,
		Steps: []harness.Step{
			harness.NewStep("Write the first definition", func(ctx *harness.Context) error {
				menuYAML := `title: First
clear_screen: false
items:
  - option: Greet
    run: echo hello
`
				return fs.WriteString(filepath.Join(ctx.RootDir, "watched.yml"), menuYAML)
			}),
			harness.NewStep("Launch with --watch and exit the menu", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(pickBinary, []string{"run", "watched.yml", "--watch"})
				if err != nil {
					return fmt.Errorf("failed to start menu: %w", err)
				}
				ctx.Set("menu_session", session)

				if err := session.WaitForText("=== First ===", 10*time.Second); err != nil {
					return err
				}
				if err := session.SendKeys("exit"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				// The process stays alive waiting for a change.
				return session.WaitForText("Watching", 5*time.Second)
			}),
			harness.NewStep("Rewrite the definition and expect a rebuilt menu", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				menuYAML := `title: Second
clear_screen: false
items:
  - option: Greet again
    run: echo hello again
`
				if err := fs.WriteString(filepath.Join(ctx.RootDir, "watched.yml"), menuYAML); err != nil {
					return err
				}

				if err := session.WaitForText("=== Second ===", 10*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("menu was not rebuilt: %w\nContent: %s", err, content)
				}
				return session.AssertContains("1. Greet again")
			}),
			harness.NewStep("Stop the watcher", func(ctx *harness.Context) error {
				session := ctx.Get("menu_session").(*tui.Session)

				if err := session.SendKeys("exit"); err != nil {
					return err
				}
				if err := session.SendKeys("Enter"); err != nil {
					return err
				}
				return session.SendKeys("C-c")
			}),
		},
	}
}
