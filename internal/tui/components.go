package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *DashboardModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	left := baseStyle.Bold(true).Render(" wattdeck ") +
		baseStyle.Render(" "+m.t(m.activeSection.titleID())+" ")

	var middle string
	switch {
	case m.currentError() != "":
		middle = baseStyle.Foreground(ColorRed).Render(" " + m.currentError() + " ")
	case m.currentNotice() != "":
		middle = baseStyle.Foreground(ColorGreen).Render(" " + m.currentNotice() + " ")
	}

	right := m.help.ShortHelpView(m.keys.ShortHelp())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 0 {
		// Drop key help first on narrow terminals.
		right = ""
		gap = max(0, m.width-lipgloss.Width(left)-lipgloss.Width(middle))
	}
	filler := baseStyle.Render(strings.Repeat(" ", gap))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(left + middle + filler + right)
}

// currentError returns the status line error, or "" once it is stale.
func (m *DashboardModel) currentError() string {
	if m.lastError == "" || m.now().Sub(m.lastErrorAt) > errorTTL {
		return ""
	}
	return m.lastError
}

// currentNotice returns the status line notice, or "" once it is stale.
func (m *DashboardModel) currentNotice() string {
	if m.notice == "" || m.now().Sub(m.noticeAt) > errorTTL {
		return ""
	}
	return m.notice
}
