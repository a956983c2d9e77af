package dashboard

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorBlue   = lipgloss.Color("39")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
	colorBorder = lipgloss.Color("240")
)

// Styles defines the visual styles for the dashboard.
type Styles struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Header   lipgloss.Style
	Text     lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	HelpBar  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Align(lipgloss.Center),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder),

		Header: lipgloss.NewStyle().
			Bold(true),

		Text: lipgloss.NewStyle(),

		Selected: lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorWhite),

		Status: lipgloss.NewStyle().
			Foreground(colorGray),

		HelpBar: lipgloss.NewStyle().
			Foreground(colorGray),
	}
}
