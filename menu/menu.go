// Package menu implements a hierarchical terminal menu: a tree of options,
// folders and separators presented either fully expanded with composite
// numbering ("2.1") or collapsed one folder level at a time with a back
// entry. The package owns the tree, the numbering and the input loop;
// terminal I/O goes through the Terminal interface so callers can plug in
// plain stdio, a bubbletea program, or a scripted fake in tests.
package menu

import (
	stderrors "errors"
	"io"

	"github.com/grovetools/pick/errors"
	"github.com/grovetools/pick/logging"
)

var log = logging.NewLogger("menu")

// Prompts and notices shown by the navigation loop.
const (
	selectPrompt   = "Select an option: "
	continuePrompt = "Press Enter to continue..."
	invalidNotice  = "Invalid selection!"
)

// Mode selects how the tree is presented.
type Mode int

const (
	// Expanded shows the entire tree at once with dot-joined composite
	// indices. Only options are selectable.
	Expanded Mode = iota
	// Collapsed shows one folder level at a time; folders open on demand
	// and "0"/"back" returns to the parent level.
	Collapsed
)

// String returns the mode name as it appears in configuration files.
func (m Mode) String() string {
	if m == Collapsed {
		return "collapsed"
	}
	return "expanded"
}

// Menu is a navigable menu tree. Build the tree with AddOption,
// AddSeparator and SetFolder, then run it with Show. Builder calls must
// happen before Show; mutating the tree while the loop is running is not
// supported.
type Menu struct {
	title       string
	root        *Folder
	mode        Mode
	clearScreen bool
	includeExit bool
	exitOption  *Option
}

// New creates an empty menu with the given title. The defaults match the
// common case: expanded mode, screen clearing on, and an automatic "Exit"
// option appended on first Show.
func New(title string) *Menu {
	m := &Menu{
		title:       title,
		mode:        Expanded,
		clearScreen: true,
		includeExit: true,
	}
	m.root = &Folder{menu: m}
	return m
}

// SetTitle changes the menu title.
func (m *Menu) SetTitle(title string) { m.title = title }

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// SetMode switches between expanded and collapsed presentation.
func (m *Menu) SetMode(mode Mode) { m.mode = mode }

// Mode returns the active presentation mode.
func (m *Menu) Mode() Mode { return m.mode }

// SetClearScreen controls whether the terminal is cleared before each
// render.
func (m *Menu) SetClearScreen(enabled bool) { m.clearScreen = enabled }

// ClearScreen reports whether the terminal is cleared before each render.
func (m *Menu) ClearScreen() bool { return m.clearScreen }

// SetIncludeExit controls whether an "Exit" option is appended as the last
// root entry on first Show.
func (m *Menu) SetIncludeExit(enabled bool) { m.includeExit = enabled }

// IncludeExit reports whether the automatic "Exit" option is enabled.
func (m *Menu) IncludeExit() bool { return m.includeExit }

// AddOption creates an option under parent (nil for the menu root) and
// returns its handle.
func (m *Menu) AddOption(label string, action Action, parent *Folder) (*Option, error) {
	target, err := m.target(parent)
	if err != nil {
		return nil, err
	}
	opt := &Option{label: label, action: action, parent: parent}
	target.append(opt)
	return opt, nil
}

// AddSeparator appends a non-selectable divider under parent (nil for the
// menu root).
func (m *Menu) AddSeparator(parent *Folder) (*Separator, error) {
	target, err := m.target(parent)
	if err != nil {
		return nil, err
	}
	sep := &Separator{parent: parent}
	target.append(sep)
	return sep, nil
}

// SetFolder creates an empty folder under parent (nil for the menu root)
// and returns its handle for further nesting. Labels need not be unique;
// every call creates a distinct node.
func (m *Menu) SetFolder(label string, parent *Folder) (*Folder, error) {
	target, err := m.target(parent)
	if err != nil {
		return nil, err
	}
	folder := &Folder{label: label, parent: parent, menu: m}
	target.append(folder)
	return folder, nil
}

// target validates a builder destination. A nil parent addresses the root;
// anything else must be a folder created by this menu that is still
// attached to its tree.
func (m *Menu) target(parent *Folder) (*Folder, error) {
	if parent == nil {
		return m.root, nil
	}
	if parent.menu != m {
		return nil, errors.InvalidTarget("folder does not belong to this menu")
	}
	return parent, nil
}

// GetItem returns the first root-level option or folder whose label equals
// label, or nil when there is none. Separators are never returned.
func (m *Menu) GetItem(label string) Item {
	for _, it := range m.root.children {
		if _, ok := it.(*Separator); ok {
			continue
		}
		if it.Label() == label {
			return it
		}
	}
	return nil
}

// RemoveItem removes the first root-level option or folder whose label
// equals label, reporting whether anything was removed. A removed folder's
// handle is detached and rejected by later builder calls.
func (m *Menu) RemoveItem(label string) bool {
	for i, it := range m.root.children {
		if _, ok := it.(*Separator); ok {
			continue
		}
		if it.Label() != label {
			continue
		}
		m.root.children = append(m.root.children[:i], m.root.children[i+1:]...)
		if folder, ok := it.(*Folder); ok {
			folder.menu = nil
		}
		return true
	}
	return false
}

// Show runs the navigation loop on t until the exit option is chosen or
// the input stream ends. Choosing an option invokes its action and
// re-renders; in collapsed mode choosing a folder descends into it and
// "0"/"back" returns to the parent level. Input that resolves to nothing
// re-renders the same view with a notice. Show returns nil on a normal
// exit, including end of input.
func (m *Menu) Show(t Terminal) error {
	m.ensureExit()

	nav := newNavigator(m)
	notice := ""
	log.WithField("mode", m.mode.String()).Debug("Starting menu loop")

	for {
		if m.clearScreen {
			if err := t.Clear(); err != nil {
				return err
			}
		}

		view := m.view(nav, notice)
		if err := t.Render(view); err != nil {
			return err
		}

		input, err := t.ReadLine(selectPrompt)
		if err != nil {
			return m.finishRead(err)
		}
		notice = ""

		line, err := nav.resolve(input, view.Lines)
		if err != nil {
			log.WithField("input", input).Debug("Input matched no entry")
			notice = invalidNotice
			continue
		}

		switch line.Kind {
		case LineBack:
			nav.pop()
		case LineFolder:
			nav.push(line.Item.(*Folder))
		case LineOption:
			opt := line.Item.(*Option)
			if opt == m.exitOption {
				log.Debug("Exit option chosen, leaving menu")
				return nil
			}
			if m.clearScreen {
				if err := t.Clear(); err != nil {
					return err
				}
			}
			opt.Invoke()
			// With clearing on, the next render would wipe whatever the
			// action printed, so hold the screen until the user is done.
			if m.clearScreen {
				if _, err := t.ReadLine(continuePrompt); err != nil {
					return m.finishRead(err)
				}
			}
		}
	}
}

// view assembles the frame for the current position.
func (m *Menu) view(nav *navigator, notice string) View {
	v := View{
		Title:  m.title,
		Mode:   m.mode,
		Notice: notice,
	}
	if m.mode == Collapsed {
		v.Path = nav.path()
		v.Lines = collapsedLines(nav.current(), nav.atRoot())
	} else {
		v.Lines = expandedLines(m.root)
	}
	return v
}

// ensureExit appends the automatic exit option once, as the last root
// entry, the first time the menu is shown.
func (m *Menu) ensureExit() {
	if !m.includeExit || m.exitOption != nil {
		return
	}
	m.exitOption, _ = m.AddOption(ExitLabel, nil, nil)
}

// finishRead maps end of input to a clean loop exit.
func (m *Menu) finishRead(err error) error {
	if stderrors.Is(err, io.EOF) {
		log.Debug("Input stream closed, leaving menu")
		return nil
	}
	return err
}
