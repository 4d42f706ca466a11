package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles used across shipit output
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ColorEnabled reports whether output should be colored.
// Color is disabled when NO_COLOR is set or stdout is not a terminal.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func render(style lipgloss.Style, text string) string {
	if !ColorEnabled() {
		return text
	}
	return style.Render(text)
}

// Success styles text as a success message
func Success(text string) string { return render(successStyle, text) }

// Warning styles text as a warning
func Warning(text string) string { return render(warnStyle, text) }

// Failure styles text as an error
func Failure(text string) string { return render(errorStyle, text) }

// Header styles text as a section header
func Header(text string) string { return render(headerStyle, text) }

// Dim styles text as secondary detail
func Dim(text string) string { return render(dimStyle, text) }
