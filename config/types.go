package config

import (
	"fmt"

	"github.com/grovetools/pick/errors"
	"github.com/mitchellh/mapstructure"
)

// Numbering modes accepted by the menu section and the CLI mode flags.
const (
	ModeExpanded  = "expanded"
	ModeCollapsed = "collapsed"
)

// MenuConfig holds the presentation defaults applied to menus that are run
// from definition files. Each field can still be overridden per definition
// file or per CLI invocation.
type MenuConfig struct {
	Mode        string `yaml:"mode,omitempty" json:"mode,omitempty" jsonschema:"description=Numbering mode: expanded or collapsed,enum=expanded,enum=collapsed"`
	ClearScreen *bool  `yaml:"clear_screen,omitempty" json:"clear_screen,omitempty" jsonschema:"description=Clear the terminal before each redraw"`
	IncludeExit *bool  `yaml:"include_exit,omitempty" json:"include_exit,omitempty" jsonschema:"description=Append an exit entry to the root level"`
}

// Config represents the pick.yml configuration
type Config struct {
	Version string      `yaml:"version" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. 1.0)"`
	Theme   string      `yaml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme name (kanagawa/gruvbox/terminal)"`
	Menu    *MenuConfig `yaml:"menu,omitempty" json:"menu,omitempty" jsonschema:"description=Default menu presentation settings"`

	// Extensions captures all other top-level keys for extensibility. They are
	// excluded from schema validation; their owners validate them.
	Extensions map[string]interface{} `yaml:",inline" json:"-" jsonschema:"-"`
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Menu == nil {
		c.Menu = &MenuConfig{}
	}
}

// Validate checks field values that the schema cannot express precisely.
func (c *Config) Validate() error {
	if c.Menu != nil {
		switch c.Menu.Mode {
		case "", ModeExpanded, ModeCollapsed:
		default:
			return errors.ConfigInvalid(fmt.Sprintf("menu.mode must be %q or %q, got %q",
				ModeExpanded, ModeCollapsed, c.Menu.Mode))
		}
	}
	return nil
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded pick.yml into the provided target struct. The target must be a pointer.
// This provides a type-safe way for extensions to access their
// custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
