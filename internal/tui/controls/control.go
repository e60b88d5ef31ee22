// Package controls holds the dashboard's input controls: pickers for meters
// and groups, the chart kind toggle, the chart link disclosure and the
// tooltip primitives they are annotated with.
package controls

import tea "github.com/charmbracelet/bubbletea"

// Control is a focusable sub-model. The dashboard routes key messages to
// the focused control and renders every control each frame.
type Control interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	SetWidth(width int)
}
