package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Italic(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true).
			MarginBottom(1)
)

// ColorEnabled reports whether styled output makes sense on stdout:
// a real terminal with at least basic color support.
func ColorEnabled() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Success renders s in the success style, or plain when color is off.
func Success(s string) string {
	if !ColorEnabled() {
		return s
	}
	return SuccessStyle.Render(s)
}

// Error renders s in the error style, or plain when color is off.
func Error(s string) string {
	if !ColorEnabled() {
		return s
	}
	return ErrorStyle.Render(s)
}

// Path renders s in the path style, or plain when color is off.
func Path(s string) string {
	if !ColorEnabled() {
		return s
	}
	return PathStyle.Render(s)
}

// Muted renders s in the muted style, or plain when color is off.
func Muted(s string) string {
	if !ColorEnabled() {
		return s
	}
	return MutedStyle.Render(s)
}
