package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 120 * time.Millisecond

// renderLoadingPlaceholder renders an animated loading indicator.
// The frame is selected based on the current time so it animates on re-render.
func renderLoadingPlaceholder(width, height int) string {
	frame := spinnerFrames[time.Now().UnixMilli()/spinnerInterval.Milliseconds()%int64(len(spinnerFrames))]

	loadingStyle := lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)

	text := loadingStyle.Render(frame + " Loading...")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

// SpinnerTickMsg triggers a re-render for loading spinners.
type SpinnerTickMsg struct{}

// handleSpinnerTick re-schedules spinner ticks while readings are loading.
func (m *DashboardModel) handleSpinnerTick() (tea.Model, tea.Cmd) {
	return m, m.startSpinnerIfNeeded()
}

// startSpinnerIfNeeded schedules a spinner tick if readings are loading.
func (m *DashboardModel) startSpinnerIfNeeded() tea.Cmd {
	if !m.loading {
		return nil
	}
	return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// withSpinner batches cmd with a spinner tick when a load just started.
func (m *DashboardModel) withSpinner(cmd tea.Cmd) tea.Cmd {
	if cmd == nil || !m.loading {
		return cmd
	}
	return tea.Batch(cmd, m.startSpinnerIfNeeded())
}
