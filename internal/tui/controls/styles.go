package controls

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue  = lipgloss.Color("39")
	colorGray  = lipgloss.Color("244")
	colorGreen = lipgloss.Color("42")
	colorWhite = lipgloss.Color("255")

	cursorStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)

	checkedStyle = lipgloss.NewStyle().Foreground(colorGreen)

	mutedStyle = lipgloss.NewStyle().Foreground(colorGray)

	tipStyle = lipgloss.NewStyle().Foreground(colorGray).Italic(true)

	// Buttons: an outlined button is inactive, a filled one is active.
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorGray)

	activeButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(colorBlue).
				Foreground(colorWhite).
				Bold(true)

	focusedButtonStyle = lipgloss.NewStyle().Underline(true)
)
