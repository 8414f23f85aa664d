package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/tui"
)

// ConfigMenuDefaultsScenario verifies that pick.yml menu defaults apply to
// definitions that leave the field unset, and that flags override both.
func ConfigMenuDefaultsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "pick-config-menu-defaults",
		Description: "Verifies config defaults reach the menu and flags take precedence.",
		Tags:        []string{"pick", "config", "interactive"},
		LocalOnly:   true,
		Steps: []harness.Step{
			harness.NewStep("Write pick.yml and a definition without a mode", func(ctx *harness.Context) error {
				configYAML := `version: "1.0"
menu:
  mode: collapsed
  clear_screen: false
`
				if err := fs.WriteString(filepath.Join(ctx.RootDir, "pick.yml"), configYAML); err != nil {
					return err
				}
				menuYAML := `title: Defaults
items:
  - option: Something
    run: echo something
`
				return fs.WriteString(filepath.Join(ctx.RootDir, "defaults.yml"), menuYAML)
			}),
			harness.NewStep("Menu picks up the collapsed default", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(pickBinary, []string{"run", "defaults.yml"})
				if err != nil {
					return fmt.Errorf("failed to start menu: %w", err)
				}

				// The breadcrumb only renders in collapsed mode.
				if err := session.WaitForText("(Current path: ROOT)", 10*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("config default did not apply: %w\nContent: %s", err, content)
				}

				if err := session.SendKeys("exit"); err != nil {
					return err
				}
				return session.SendKeys("Enter")
			}),
			harness.NewStep("--expanded overrides the config default", func(ctx *harness.Context) error {
				pickBinary, err := findPickBinary()
				if err != nil {
					return err
				}
				session, err := ctx.StartTUI(pickBinary, []string{"run", "defaults.yml", "--expanded"})
				if err != nil {
					return fmt.Errorf("failed to start menu: %w", err)
				}

				if err := session.WaitForText("=== Defaults ===", 10*time.Second); err != nil {
					return err
				}
				content, err := session.Capture()
				if err != nil {
					return err
				}
				if strings.Contains(content, "Current path:") {
					return fmt.Errorf("breadcrumb rendered despite --expanded:\n%s", content)
				}

				if err := session.SendKeys("exit"); err != nil {
					return err
				}
				return session.SendKeys("Enter")
			}),
		},
	}
}
