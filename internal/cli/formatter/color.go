package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"tally/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// heatRamp holds the fill colors for heatmap cells, coldest to hottest.
var heatRamp = []lipgloss.Color{
	lipgloss.Color("#3c3836"),
	lipgloss.Color("#4e5a3a"),
	lipgloss.Color("#6c8046"),
	lipgloss.Color("#8ec07c"),
	lipgloss.Color("#b8e8a0"),
}

// HeatStyle maps an intensity in [0,1] to a cell style. Negative intensity
// marks a padding cell rendered as blank space.
func HeatStyle(intensity float64) lipgloss.Style {
	if intensity < 0 {
		return lipgloss.NewStyle()
	}
	idx := int(intensity * float64(len(heatRamp)-1))
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	return lipgloss.NewStyle().Foreground(heatRamp[idx])
}

// StatusStyle returns the style for a session status.
func StatusStyle(status domain.SessionStatus) lipgloss.Style {
	switch status {
	case domain.SessionRunning:
		return StyleGreen
	case domain.SessionPaused:
		return StyleYellow
	case domain.SessionCanceled:
		return StyleRed
	default:
		return StyleDim
	}
}
