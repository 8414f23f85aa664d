package teaprompt

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/pick/menu"
	"github.com/grovetools/pick/testutil"
	"github.com/grovetools/pick/tui/theme"
)

func newTestModel(v menu.View) promptModel {
	input := textinput.New()
	input.Prompt = ""
	input.Focus()
	return promptModel{
		view:   v,
		prompt: "Select an option: ",
		input:  input,
		theme:  theme.NewThemeWithName("terminal"),
	}
}

func TestPromptModelView(t *testing.T) {
	m := newTestModel(menu.View{
		Title: "Pizzeria",
		Mode:  menu.Collapsed,
		Path:  []string{"Drinks"},
		Lines: []menu.Line{
			{Kind: menu.LineBack, Index: "0", Label: menu.BackLabel},
			{Kind: menu.LineOption, Index: "1", Label: "Tea"},
			{Kind: menu.LineSeparator},
		},
		Notice: "Invalid selection!",
	})

	got := testutil.StripANSI(m.View())
	for _, want := range []string{
		"=== Pizzeria ===",
		"(Current path: Drinks)",
		"0. ",
		"Back",
		"1. ",
		"Tea",
		"Invalid selection!",
		"Select an option: ",
		"esc to quit",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("view missing %q:\n%s", want, got)
		}
	}
}

func TestPromptModelSubmit(t *testing.T) {
	m := newTestModel(menu.View{Title: "t"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	updated, cmd := updated.(promptModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	final := updated.(promptModel)
	if final.value != "2" {
		t.Errorf("submitted value = %q, want %q", final.value, "2")
	}
	if final.eof {
		t.Error("enter must not signal end of input")
	}
	if cmd == nil {
		t.Fatal("enter did not quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter returned a command other than quit")
	}
}

func TestPromptModelEscape(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD} {
		m := newTestModel(menu.View{Title: "t"})
		updated, cmd := m.Update(tea.KeyMsg{Type: key})

		final := updated.(promptModel)
		if !final.eof {
			t.Errorf("%v did not signal end of input", key)
		}
		if cmd == nil {
			t.Fatalf("%v did not quit the program", key)
		}
	}
}

func TestTerminalStoresView(t *testing.T) {
	term := New(Config{Theme: theme.NewThemeWithName("terminal")})
	v := menu.View{Title: "stored"}
	if err := term.Render(v); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if term.view.Title != "stored" {
		t.Errorf("stored view title = %q, want %q", term.view.Title, "stored")
	}
	if err := term.Clear(); err != nil {
		t.Errorf("Clear() error = %v", err)
	}
}
