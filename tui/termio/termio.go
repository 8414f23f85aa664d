// Package termio implements menu.Terminal on plain line-oriented terminal
// I/O: buffered stdin reads, lipgloss-styled output and a termenv screen
// clear. It is the front-end the pick binary uses unless --tui is given.
package termio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/grovetools/pick/menu"
	"github.com/grovetools/pick/tui/theme"
)

// Separators never stretch past this, whatever the terminal width.
const maxSeparatorWidth = 40

// Config configures a Terminal. Zero-value fields fall back to stdin,
// stdout and the default theme.
type Config struct {
	In    io.Reader
	Out   io.Writer
	Theme *theme.Theme
	// Width fixes the render width; 0 detects the terminal width.
	Width int
}

// Terminal renders menu views as numbered text lines and reads selections
// line by line.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	output *termenv.Output
	theme  *theme.Theme
	width  int
}

// New creates a line-mode terminal.
func New(cfg Config) *Terminal {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme
	}
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		output: termenv.NewOutput(out),
		theme:  th,
		width:  cfg.Width,
	}
}

// Render writes one frame: the title, the breadcrumb in collapsed mode, the
// menu lines indented per depth, and any pending notice.
func (t *Terminal) Render(v menu.View) error {
	var b strings.Builder

	b.WriteString(t.theme.Title.Render("=== " + v.Title + " ==="))
	if v.Mode == menu.Collapsed {
		crumb := "ROOT"
		if len(v.Path) > 0 {
			crumb = strings.Join(v.Path, " / ")
		}
		b.WriteString(" " + t.theme.Breadcrumb.Render("(Current path: "+crumb+")"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range v.Lines {
		b.WriteString(t.renderLine(line))
		b.WriteString("\n")
	}

	if v.Notice != "" {
		b.WriteString(t.theme.Notice.Render(v.Notice))
		b.WriteString("\n")
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Terminal) renderLine(line menu.Line) string {
	indent := strings.Repeat("   ", line.Depth)

	switch line.Kind {
	case menu.LineSeparator:
		return indent + t.theme.Separator.Render(t.separator())
	case menu.LinePlaceholder:
		return indent + t.theme.Empty.Render(line.Label)
	case menu.LineBack:
		return indent + t.theme.Index.Render(line.Index+". ") + t.theme.Back.Render(line.Label)
	case menu.LineFolder:
		name := t.theme.Folder.Render("[" + line.Label + "]")
		if folder, ok := line.Item.(*menu.Folder); ok && folder.IsEmpty() {
			name += " " + t.theme.Empty.Render(menu.Placeholder)
		}
		if line.Index == "" {
			return indent + name
		}
		return indent + t.theme.Index.Render(line.Index+". ") + name
	default:
		return indent + t.theme.Index.Render(line.Index+". ") + t.theme.Option.Render(line.Label)
	}
}

// separator returns the divider text, stretched to the render width.
func (t *Terminal) separator() string {
	width := t.width
	if width == 0 {
		if f, ok := t.out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil {
				width = w
			}
		}
	}
	if width <= 0 {
		return "- - -"
	}
	if width > maxSeparatorWidth {
		width = maxSeparatorWidth
	}
	return strings.TrimRight(strings.Repeat("- ", (width+1)/2), " ")
}

// ReadLine prints the prompt on its own line and reads one line of input,
// without the trailing newline. Returns io.EOF once input is exhausted.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(t.out, "\n"+t.theme.Prompt.Render(prompt)); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts.
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear wipes the screen and homes the cursor.
func (t *Terminal) Clear() error {
	t.output.ClearScreen()
	return nil
}
