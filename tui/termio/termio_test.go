package termio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/grovetools/pick/menu"
	"github.com/grovetools/pick/testutil"
	"github.com/grovetools/pick/tui/theme"
)

func newTestTerminal(in string, out *bytes.Buffer) *Terminal {
	return New(Config{
		In:    strings.NewReader(in),
		Out:   out,
		Theme: theme.NewThemeWithName("terminal"),
		Width: 10,
	})
}

func TestRenderExpanded(t *testing.T) {
	m := menu.New("Pizzeria")
	opt, err := m.AddOption("Margherita", nil, nil)
	if err != nil {
		t.Fatalf("AddOption() error = %v", err)
	}
	folder, err := m.SetFolder("Drinks", nil)
	if err != nil {
		t.Fatalf("SetFolder() error = %v", err)
	}

	var out bytes.Buffer
	term := newTestTerminal("", &out)
	err = term.Render(menu.View{
		Title: "Pizzeria",
		Mode:  menu.Expanded,
		Lines: []menu.Line{
			{Kind: menu.LineOption, Index: "1", Label: "Margherita", Item: opt},
			{Kind: menu.LineSeparator},
			{Kind: menu.LineFolder, Label: "Drinks", Item: folder},
		},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := testutil.StripANSI(out.String())
	for _, want := range []string{
		"=== Pizzeria ===",
		"1. Margherita",
		"- - -",
		"[Drinks] <empty>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Current path") {
		t.Errorf("expanded output shows a breadcrumb:\n%s", got)
	}
}

func TestRenderExpandedIndentsByDepth(t *testing.T) {
	m := menu.New("t")
	folder, err := m.SetFolder("F", nil)
	if err != nil {
		t.Fatalf("SetFolder() error = %v", err)
	}
	opt, err := m.AddOption("B", nil, folder)
	if err != nil {
		t.Fatalf("AddOption() error = %v", err)
	}

	var out bytes.Buffer
	term := newTestTerminal("", &out)
	err = term.Render(menu.View{
		Title: "t",
		Lines: []menu.Line{
			{Kind: menu.LineFolder, Index: "1", Label: "F", Item: folder},
			{Kind: menu.LineOption, Index: "1.1", Label: "B", Item: opt, Depth: 1},
		},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := testutil.StripANSI(out.String())
	if !strings.Contains(got, "\n   1.1. B") {
		t.Errorf("nested option not indented:\n%s", got)
	}
}

func TestRenderCollapsed(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal("", &out)
	err := term.Render(menu.View{
		Title: "Pizzeria",
		Mode:  menu.Collapsed,
		Path:  []string{"Drinks", "Hot"},
		Lines: []menu.Line{
			{Kind: menu.LineBack, Index: "0", Label: menu.BackLabel},
			{Kind: menu.LineOption, Index: "1", Label: "Tea"},
		},
		Notice: "Invalid selection!",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := testutil.StripANSI(out.String())
	for _, want := range []string{
		"(Current path: Drinks / Hot)",
		"0. Back",
		"1. Tea",
		"Invalid selection!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCollapsedRootPath(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal("", &out)
	err := term.Render(menu.View{
		Title: "t",
		Mode:  menu.Collapsed,
		Lines: []menu.Line{{Kind: menu.LinePlaceholder, Label: menu.Placeholder}},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := testutil.StripANSI(out.String())
	if !strings.Contains(got, "(Current path: ROOT)") {
		t.Errorf("root breadcrumb missing:\n%s", got)
	}
	if !strings.Contains(got, menu.Placeholder) {
		t.Errorf("placeholder missing:\n%s", got)
	}
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal("2\nhello\nlast", &out)

	for _, want := range []string{"2", "hello", "last"} {
		got, err := term.ReadLine("Select an option: ")
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := term.ReadLine("Select an option: "); err != io.EOF {
		t.Errorf("ReadLine() after exhaustion = %v, want io.EOF", err)
	}
	if !strings.Contains(testutil.StripANSI(out.String()), "Select an option: ") {
		t.Error("prompt was not written to the output")
	}
}

func TestShowThroughTerminal(t *testing.T) {
	invoked := 0
	m := menu.New("Demo")
	m.SetClearScreen(false)
	if _, err := m.AddOption("Run", func() { invoked++ }, nil); err != nil {
		t.Fatalf("AddOption() error = %v", err)
	}

	var out bytes.Buffer
	term := newTestTerminal("1\nexit\n", &out)
	if err := m.Show(term); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	if invoked != 1 {
		t.Errorf("action invoked %d times, want 1", invoked)
	}
	got := testutil.StripANSI(out.String())
	if !strings.Contains(got, "1. Run") || !strings.Contains(got, "2. Exit") {
		t.Errorf("menu lines missing from output:\n%s", got)
	}
}
