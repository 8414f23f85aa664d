package menu

import (
	"strings"

	"github.com/grovetools/pick/errors"
)

// navigator holds the collapsed-mode position: a stack of folders from the
// root down to the folder in view. An empty stack means the root is in
// view. Expanded mode never pushes, so its position is always the root.
type navigator struct {
	menu  *Menu
	stack []*Folder
}

func newNavigator(m *Menu) *navigator {
	return &navigator{menu: m}
}

// current returns the folder whose children are in view.
func (n *navigator) current() *Folder {
	if len(n.stack) == 0 {
		return n.menu.root
	}
	return n.stack[len(n.stack)-1]
}

func (n *navigator) atRoot() bool { return len(n.stack) == 0 }

func (n *navigator) push(f *Folder) { n.stack = append(n.stack, f) }

func (n *navigator) pop() {
	if len(n.stack) > 0 {
		n.stack = n.stack[:len(n.stack)-1]
	}
}

// path returns the labels of the folders on the stack, root first, for the
// breadcrumb.
func (n *navigator) path() []string {
	if len(n.stack) == 0 {
		return nil
	}
	path := make([]string, len(n.stack))
	for i, f := range n.stack {
		path[i] = f.label
	}
	return path
}

// resolve maps one line of raw input to a visible line. Resolution order:
// exact display-index match first, then the reserved back keywords ("0" or
// "back", only below the root in collapsed mode), then a case-insensitive
// label match that must be unique among the selectable lines. Folder
// indices are display-only in expanded mode and do not resolve. Anything
// else is an INVALID_SELECTION.
func (n *navigator) resolve(input string, lines []Line) (Line, error) {
	input = strings.TrimSpace(input)

	for _, line := range lines {
		if line.Index != "" && line.Index == input && n.selectable(line) {
			return line, nil
		}
	}

	if n.menu.mode == Collapsed && !n.atRoot() {
		if input == "0" || strings.EqualFold(input, BackLabel) {
			return Line{Kind: LineBack, Index: "0", Label: BackLabel}, nil
		}
	}

	var match Line
	found := 0
	for _, line := range lines {
		if n.selectable(line) && strings.EqualFold(line.Label, input) {
			match = line
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	return Line{}, errors.InvalidSelection(input)
}

// selectable reports whether a line can be chosen. Separators and
// placeholders never can; folder lines only in collapsed mode.
func (n *navigator) selectable(line Line) bool {
	switch line.Kind {
	case LineOption, LineBack:
		return line.Index != ""
	case LineFolder:
		return n.menu.mode == Collapsed && line.Index != ""
	default:
		return false
	}
}
