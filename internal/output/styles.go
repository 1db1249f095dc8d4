package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for every ANSI 256 color used in the CLI;
// never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, template names, parameter keys.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleHeader styles table headers.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
)

// File status constants.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusDirectory   = "directory"
	StatusFailed      = "failed"
)

// StatusStyle returns the lipgloss style for a file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusDirectory:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 48

// FormatFileLine renders a project-relative path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
