package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorBlue   = lipgloss.Color("39")
	ColorGray   = lipgloss.Color("244")
	ColorNavy   = lipgloss.Color("17")
	ColorWhite  = lipgloss.Color("255")
	ColorRed    = lipgloss.Color("196")
	ColorGreen  = lipgloss.Color("42")
	ColorOrange = lipgloss.Color("208")
)

// seriesColors colour chart series in selection order.
var seriesColors = []lipgloss.Color{
	ColorBlue,
	ColorOrange,
	ColorGreen,
	lipgloss.Color("201"),
	lipgloss.Color("226"),
	lipgloss.Color("141"),
}

func seriesColor(i int) lipgloss.Color {
	return seriesColors[i%len(seriesColors)]
}

var (
	helpStyle = lipgloss.NewStyle().Foreground(ColorGray)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	activeSectionBoxStyle = sectionBoxStyle.BorderForeground(ColorBlue)
)
