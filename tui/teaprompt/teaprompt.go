// Package teaprompt implements menu.Terminal as a full-screen bubbletea
// program with a textinput for numeric and keyword entry. Menu items are
// still chosen by typing their index or label; bubbletea supplies the
// screen management and the input widget, not arrow-key navigation.
package teaprompt

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/pick/menu"
	"github.com/grovetools/pick/tui/theme"
)

// Config configures the terminal. Zero values run on the process terminal
// with the default theme.
type Config struct {
	In    io.Reader
	Out   io.Writer
	Theme *theme.Theme
}

// Terminal shows each frame as a bubbletea program on the alternate screen
// and reads the selection through a textinput.
type Terminal struct {
	cfg  Config
	view menu.View
}

// New creates a bubbletea-backed terminal.
func New(cfg Config) *Terminal {
	if cfg.Theme == nil {
		cfg.Theme = theme.DefaultTheme
	}
	return &Terminal{cfg: cfg}
}

// Render stores the frame; it is drawn by the program ReadLine runs.
func (t *Terminal) Render(v menu.View) error {
	t.view = v
	return nil
}

// Clear is a no-op: the alternate screen starts blank on every prompt.
func (t *Terminal) Clear() error { return nil }

// ReadLine runs one prompt cycle over the stored frame and returns the
// entered line. Esc, ctrl+c and ctrl+d signal io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "number or name"
	input.CharLimit = 64
	input.Focus()

	model := promptModel{
		view:   t.view,
		prompt: prompt,
		input:  input,
		theme:  t.cfg.Theme,
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if t.cfg.In != nil {
		opts = append(opts, tea.WithInput(t.cfg.In))
	}
	if t.cfg.Out != nil {
		opts = append(opts, tea.WithOutput(t.cfg.Out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return "", err
	}

	m := final.(promptModel)
	if m.eof {
		return "", io.EOF
	}
	return m.value, nil
}

type promptModel struct {
	view   menu.View
	prompt string
	input  textinput.Model
	theme  *theme.Theme
	width  int
	value  string
	eof    bool
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD:
			m.eof = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("=== " + m.view.Title + " ==="))
	if m.view.Mode == menu.Collapsed {
		crumb := "ROOT"
		if len(m.view.Path) > 0 {
			crumb = strings.Join(m.view.Path, " / ")
		}
		b.WriteString(" " + m.theme.Breadcrumb.Render("(Current path: "+crumb+")"))
	}
	b.WriteString("\n\n")

	for _, line := range m.view.Lines {
		b.WriteString(m.renderLine(line))
		b.WriteString("\n")
	}

	if m.view.Notice != "" {
		b.WriteString("\n" + m.theme.Notice.Render(m.view.Notice) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Prompt.Render(m.prompt))
	b.WriteString(m.input.View())
	b.WriteString("\n\n" + m.theme.Muted.Render("enter to select • esc to quit"))

	return b.String()
}

func (m promptModel) renderLine(line menu.Line) string {
	indent := strings.Repeat("   ", line.Depth)

	switch line.Kind {
	case menu.LineSeparator:
		return indent + m.theme.Separator.Render("- - -")
	case menu.LinePlaceholder:
		return indent + m.theme.Empty.Render(line.Label)
	case menu.LineBack:
		return indent + m.theme.Index.Render(line.Index+". ") +
			m.theme.Back.Render(theme.IconBack+" "+line.Label)
	case menu.LineFolder:
		name := m.theme.Folder.Render(theme.IconFolder + " " + line.Label)
		if folder, ok := line.Item.(*menu.Folder); ok && folder.IsEmpty() {
			name += " " + m.theme.Empty.Render(menu.Placeholder)
		}
		if line.Index == "" {
			return indent + name
		}
		return indent + m.theme.Index.Render(line.Index+". ") + name
	default:
		return indent + m.theme.Index.Render(line.Index+". ") + m.theme.Option.Render(line.Label)
	}
}
