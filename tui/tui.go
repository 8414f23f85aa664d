package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Initialize prepares the terminal environment for styled menu output.
// It checks for environment variables that force color output (`CLICOLOR_FORCE`,
// `COLORTERM`) and sets the appropriate lipgloss color profile when present.
//
// This ensures consistent color and styling when menus run in non-interactive
// or CI environments (e.g., when testing with 'tend'), while having no effect
// in production environments where these variables are not set.
//
// Call it at the start of the program, before any styles are rendered.
func Initialize() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
