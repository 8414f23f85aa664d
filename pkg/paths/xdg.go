// Package paths provides XDG-compliant path resolution for pick.
//
// Resolution order:
// 1. PICK_HOME (portable root) → $PICK_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/pick
// 3. Platform defaults → ~/.config/pick, ~/.local/state/pick
package paths

import (
	"os"
	"path/filepath"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if pickHome := os.Getenv("PICK_HOME"); pickHome != "" {
		return filepath.Join(pickHome, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if pickHome := os.Getenv("PICK_HOME"); pickHome != "" {
		return filepath.Join(pickHome, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the pick configuration directory.
// Used for the global pick.yml layer.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "pick")
}

// StateDir returns the pick state directory.
// Used for log files.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "pick")
}
