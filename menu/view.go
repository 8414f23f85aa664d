package menu

// LineKind distinguishes the kinds of line a Terminal receives.
type LineKind int

const (
	// LineOption is a selectable option entry.
	LineOption LineKind = iota
	// LineFolder is a folder entry. Folder lines are selectable in
	// collapsed mode only; in expanded mode their index is display-only.
	LineFolder
	// LineSeparator is a non-selectable divider.
	LineSeparator
	// LineBack is the synthetic entry that returns to the parent level
	// in collapsed mode.
	LineBack
	// LinePlaceholder marks a folder view with nothing in it.
	LinePlaceholder
)

// Line is one render record. Index holds the display index exactly as
// computed ("2.1" in expanded mode, "3" or the reserved "0" in collapsed
// mode) and is empty for lines that cannot be selected. Item references the
// underlying node for option and folder lines and is nil otherwise. Depth
// is the nesting level, used for indentation in expanded mode.
type Line struct {
	Kind  LineKind
	Index string
	Label string
	Item  Item
	Depth int
}

// View is one full frame handed to the Terminal: the menu title, the
// collapsed-mode breadcrumb path (empty while the root is in view), the
// ordered lines, and a notice carried over from the previous cycle, such as
// the message after an invalid selection. Terminals may style a view
// however they like but must preserve line order, indices and labels.
type View struct {
	Title  string
	Mode   Mode
	Path   []string
	Lines  []Line
	Notice string
}

// Terminal is the I/O collaborator a menu is shown on. ReadLine blocks for
// one line of input and returns io.EOF when the stream ends, which
// terminates the navigation loop. Clear is only called on menus configured
// to clear the screen.
type Terminal interface {
	Render(v View) error
	ReadLine(prompt string) (string, error)
	Clear() error
}
