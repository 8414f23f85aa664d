package theme

import (
	"os"

	"github.com/grovetools/pick/config"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconFolder  = "" // fa-folder_tree (U+EF81)
	nerdIconBack    = "󰁍" // md-arrow_left (U+F004D)
	nerdIconBullet  = "" // oct-dot_fill (U+F444)
	nerdIconSelect  = "󰱒" // md-checkbox_outline (U+F0C52)
	nerdIconSuccess = "󰄬" // md-check (U+F012C)
	nerdIconError   = "" // cod-error (U+EA87)
	nerdIconWarning = "" // fa-warning (U+F071)
	nerdIconInfo    = "󰋼" // md-information (U+F02FC)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconFolder  = "◆"
	asciiIconBack    = "←"
	asciiIconBullet  = "•"
	asciiIconSelect  = "▶"
	asciiIconSuccess = "✓"
	asciiIconError   = "✗"
	asciiIconWarning = "⚠"
	asciiIconInfo    = "ℹ"
)

// Public Icon Variables
var (
	IconFolder  string
	IconBack    string
	IconBullet  string
	IconSelect  string
	IconSuccess string
	IconError   string
	IconWarning string
	IconInfo    string
)

// init function determines which icon set to use
func init() {
	useASCII := false

	// 1. Check environment variable first
	if os.Getenv("PICK_ICONS") == "ascii" {
		useASCII = true
	} else {
		// 2. Check config file
		cfg, err := config.LoadDefault()
		if err == nil {
			var tuiCfg struct {
				Icons string `yaml:"icons"`
			}
			if err := cfg.UnmarshalExtension("tui", &tuiCfg); err == nil && tuiCfg.Icons == "ascii" {
				useASCII = true
			}
		}
	}

	if useASCII {
		IconFolder = asciiIconFolder
		IconBack = asciiIconBack
		IconBullet = asciiIconBullet
		IconSelect = asciiIconSelect
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
	} else {
		IconFolder = nerdIconFolder
		IconBack = nerdIconBack
		IconBullet = nerdIconBullet
		IconSelect = nerdIconSelect
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		IconWarning = nerdIconWarning
		IconInfo = nerdIconInfo
	}
}
