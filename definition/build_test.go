package definition

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/grovetools/pick/command"
	"github.com/grovetools/pick/menu"
	"github.com/grovetools/pick/testutil"
)

// recordingExecutor captures every command line and substitutes a no-op.
type recordingExecutor struct {
	commands [][]string
}

func (e *recordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	e.commands = append(e.commands, append([]string{name}, args...))
	return exec.CommandContext(ctx, "true")
}

func TestBuild(t *testing.T) {
	def, err := Parse([]byte(pizzeriaYAML), ".yml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	rec := &recordingExecutor{}
	runner := command.NewRunnerWithExecutor(rec)
	runner.Stderr = &bytes.Buffer{}

	m, err := def.Build(runner)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if m.Title() != "Pizzeria" {
		t.Errorf("Title() = %q, want %q", m.Title(), "Pizzeria")
	}
	if m.Mode() != menu.Collapsed {
		t.Errorf("Mode() = %v, want %v", m.Mode(), menu.Collapsed)
	}
	if m.ClearScreen() {
		t.Error("ClearScreen() = true, want false")
	}
	if !m.IncludeExit() {
		t.Error("IncludeExit() = false, want true")
	}

	drinks, ok := m.GetItem("Drinks").(*menu.Folder)
	if !ok {
		t.Fatal("GetItem(Drinks) is not a folder")
	}
	children := drinks.Children()
	if len(children) != 2 {
		t.Fatalf("len(Drinks children) = %d, want 2", len(children))
	}
	if children[0].Label() != "Tea" {
		t.Errorf("children[0].Label() = %q, want %q", children[0].Label(), "Tea")
	}
	cold, ok := children[1].(*menu.Folder)
	if !ok || cold.Label() != "Cold" {
		t.Fatalf("children[1] = %#v, want folder Cold", children[1])
	}

	// Selecting an option must run its command through the shell.
	order, ok := m.GetItem("Order margherita").(*menu.Option)
	if !ok {
		t.Fatal("GetItem(Order margherita) is not an option")
	}
	order.Invoke()
	if len(rec.commands) != 1 {
		t.Fatalf("len(commands) = %d, want 1", len(rec.commands))
	}
	want := []string{"sh", "-c", `echo "one margherita"`}
	got := rec.commands[0]
	if len(got) != len(want) {
		t.Fatalf("command = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildDefaults(t *testing.T) {
	def := &Definition{Title: "Plain"}

	m, err := def.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.Mode() != menu.Expanded {
		t.Errorf("Mode() = %v, want %v", m.Mode(), menu.Expanded)
	}
	if !m.ClearScreen() {
		t.Error("ClearScreen() = false, want true")
	}
}

func TestBuildOptionWithoutRun(t *testing.T) {
	def := &Definition{
		Title: "Plain",
		Items: []Item{{Option: "Noop"}},
	}

	rec := &recordingExecutor{}
	m, err := def.Build(command.NewRunnerWithExecutor(rec))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	opt := m.GetItem("Noop").(*menu.Option)
	opt.Invoke()
	if len(rec.commands) != 0 {
		t.Errorf("len(commands) = %d, want 0", len(rec.commands))
	}
}

func TestBuildMenuRunsEndToEnd(t *testing.T) {
	def, err := Parse([]byte(pizzeriaYAML), ".yml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	rec := &recordingExecutor{}
	runner := command.NewRunnerWithExecutor(rec)
	runner.Stderr = &bytes.Buffer{}

	m, err := def.Build(runner)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Walk into Drinks, order a Tea, then leave. clear_screen is false in
	// the definition, so no continue prompts interleave.
	term := testutil.NewScriptTerminal("2", "1", "back", "exit")
	if err := m.Show(term); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	if len(rec.commands) != 1 {
		t.Fatalf("len(commands) = %d, want 1", len(rec.commands))
	}
	if rec.commands[0][2] != "echo tea" {
		t.Errorf("command = %v, want echo tea", rec.commands[0])
	}

	inside := term.Views[1]
	if len(inside.Path) != 1 || inside.Path[0] != "Drinks" {
		t.Errorf("Path = %v, want [Drinks]", inside.Path)
	}
}
