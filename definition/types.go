package definition

// Numbering modes accepted by the mode field.
const (
	ModeExpanded  = "expanded"
	ModeCollapsed = "collapsed"
)

// Definition is the declarative form of a menu, loaded from a yaml or toml
// file.
type Definition struct {
	Title       string `yaml:"title" toml:"title" json:"title,omitempty" jsonschema:"description=Menu title shown in the header"`
	Mode        string `yaml:"mode,omitempty" toml:"mode,omitempty" json:"mode,omitempty" jsonschema:"description=Numbering mode: expanded or collapsed,enum=expanded,enum=collapsed"`
	ClearScreen *bool  `yaml:"clear_screen,omitempty" toml:"clear_screen,omitempty" json:"clear_screen,omitempty" jsonschema:"description=Clear the terminal before each redraw"`
	IncludeExit *bool  `yaml:"include_exit,omitempty" toml:"include_exit,omitempty" json:"include_exit,omitempty" jsonschema:"description=Append an exit entry to the root level"`
	Items       []Item `yaml:"items,omitempty" toml:"items,omitempty" json:"items,omitempty" jsonschema:"description=Top level menu entries"`
}

// Item is a single entry in a definition. Exactly one of Option, Folder or
// Separator identifies its kind; Run accompanies Option and Items accompanies
// Folder.
type Item struct {
	Option    string `yaml:"option,omitempty" toml:"option,omitempty" json:"option,omitempty" jsonschema:"description=Label of a runnable option"`
	Run       string `yaml:"run,omitempty" toml:"run,omitempty" json:"run,omitempty" jsonschema:"description=Shell command executed when the option is selected"`
	Folder    string `yaml:"folder,omitempty" toml:"folder,omitempty" json:"folder,omitempty" jsonschema:"description=Label of a submenu"`
	Separator bool   `yaml:"separator,omitempty" toml:"separator,omitempty" json:"separator,omitempty" jsonschema:"description=Visual divider between entries"`
	Items     []Item `yaml:"items,omitempty" toml:"items,omitempty" json:"items,omitempty" jsonschema:"description=Children of a folder"`
}
