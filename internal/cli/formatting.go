package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Styles for the status listing. Lipgloss degrades these to plain
// text when stdout is not a terminal.
var (
	styleCurrent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleModTime = lipgloss.NewStyle().Faint(true)
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}
