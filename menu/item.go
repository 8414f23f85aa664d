package menu

// Action is the zero-argument callback attached to an Option. It runs
// synchronously on the navigation loop when the option is chosen.
type Action func()

// Item is a node in the menu tree. The concrete types are *Option, *Folder
// and *Separator; nothing outside this package implements it. Items are
// compared by pointer identity, never by value, so two nodes with the same
// label are still distinct entries.
type Item interface {
	// Label returns the display text. Separators have none.
	Label() string
	// Parent returns the folder the item was added to, or nil for items
	// sitting directly at the menu root.
	Parent() *Folder

	item()
}

// Option is a selectable entry that invokes its action when chosen.
type Option struct {
	label  string
	action Action
	parent *Folder
}

// Label returns the option's display text.
func (o *Option) Label() string { return o.label }

// Parent returns the folder the option was added to, or nil at root.
func (o *Option) Parent() *Folder { return o.parent }

// Invoke runs the option's action. Options without an action are a no-op.
func (o *Option) Invoke() {
	if o.action != nil {
		o.action()
	}
}

func (o *Option) item() {}

// Folder is a submenu holding an ordered list of child items. A folder may
// be empty; insertion order is display order.
type Folder struct {
	label    string
	parent   *Folder
	children []Item
	menu     *Menu
}

// Label returns the folder's display text.
func (f *Folder) Label() string { return f.label }

// Parent returns the enclosing folder, or nil for folders at root.
func (f *Folder) Parent() *Folder { return f.parent }

// Children returns the folder's items in insertion order. The returned
// slice is the folder's own; callers must not modify it.
func (f *Folder) Children() []Item { return f.children }

// IsEmpty reports whether the folder has no children.
func (f *Folder) IsEmpty() bool { return len(f.children) == 0 }

func (f *Folder) append(child Item) {
	f.children = append(f.children, child)
}

func (f *Folder) item() {}

// Separator is a non-selectable divider. It is skipped by numbering and can
// never be resolved from input.
type Separator struct {
	parent *Folder
}

// Label returns the empty string; separators carry no label.
func (s *Separator) Label() string { return "" }

// Parent returns the folder the separator was added to, or nil at root.
func (s *Separator) Parent() *Folder { return s.parent }

func (s *Separator) item() {}
