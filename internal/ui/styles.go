// Package ui provides terminal output styling for the gkedeploy CLI.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	// Colors
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#6b7280")

	// Styles
	commandStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	stderrStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)
)

// Interactive reports whether stdout is attached to a terminal.
// Styled output degrades to plain text when it is not.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Command renders an echoed command line.
func Command(s string) string { return render(commandStyle, s) }

// Error renders a fatal error message.
func Error(s string) string { return render(errorStyle, s) }

// Stderr renders captured stderr from a failed command.
func Stderr(s string) string { return render(stderrStyle, s) }

// Success renders a completion message.
func Success(s string) string { return render(successStyle, s) }

func render(style lipgloss.Style, s string) string {
	if !Interactive() {
		return s
	}
	return style.Render(s)
}
