package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, option values.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success lines.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the error prefix.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, option values, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSuccess styles the final success line.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarning styles soft-failure lines.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles the error prefix.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)

	// stylePanel frames the header panel.
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCyan).
			Padding(0, 1)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatError renders an error message with the distinct "Error:" prefix.
func FormatError(msg string) string {
	return StyleError.Render("Error:") + " " + msg
}

// FormatWarning renders a warning message with the "Warning:" prefix.
func FormatWarning(msg string) string {
	return StyleWarning.Render("Warning:") + " " + msg
}

// RenderPanel renders a bold cyan title inside a rounded border, sized to fit.
func RenderPanel(title string) string {
	return stylePanel.Render(StyleBold.Foreground(ColorCyan).Render(title))
}
