package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	minSidebarWidth = 30
	maxSidebarWidth = 44
)

// sidebarWidth is the width of the control column, borders included.
func (m *DashboardModel) sidebarWidth() int {
	return min(maxSidebarWidth, max(minSidebarWidth, m.width/3))
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	return m.renderDashboard()
}

// renderDashboard renders the main dashboard layout
func (m *DashboardModel) renderDashboard() string {
	if m.height < 16 || m.width < 60 {
		return "Terminal too small. Resize to at least 60x16."
	}

	// The link row sits outside any box so the payload is never wrapped.
	linkRow := m.renderLinkSection()
	statusLine := m.renderStatusLine()
	mainHeight := m.height - lipgloss.Height(linkRow) - lipgloss.Height(statusLine)

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSection(SectionGroups, m.groupPicker.View()),
		m.renderSection(SectionMeters, m.meterPicker.View()),
		m.renderSection(SectionChartKind, m.kindToggle.View()),
	)

	chartWidth := m.width - m.sidebarWidth()
	chart := m.renderChartSection(chartWidth, max(6, mainHeight))

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, chart)
	main = lipgloss.NewStyle().MaxHeight(max(1, mainHeight)).Render(main)

	return lipgloss.JoinVertical(lipgloss.Left, main, linkRow, statusLine)
}

// renderSection draws a titled, bordered control box in the sidebar.
func (m *DashboardModel) renderSection(s Section, body string) string {
	style := sectionBoxStyle
	if m.activeSection == s {
		style = activeSectionBoxStyle
	}
	title := sectionTitleStyle.Render(m.t(s.titleID()))
	rows := []string{title, body}
	if tip, ok := m.tips[s]; ok {
		if tip.Expanded() {
			rows = append(rows, tip.View())
		} else {
			rows[0] = title + " " + tip.View()
		}
	}
	return style.Width(m.sidebarWidth() - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderLinkSection draws the link disclosure with a focus marker.
func (m *DashboardModel) renderLinkSection() string {
	marker := "  "
	if m.activeSection == SectionLink {
		marker = lipgloss.NewStyle().Foreground(ColorBlue).Render("▸ ")
	}
	return marker + m.linkDisclosure.View()
}

// renderChartSection draws the chart pane box.
func (m *DashboardModel) renderChartSection(width, height int) string {
	style := sectionBoxStyle
	if m.activeSection == SectionChart {
		style = activeSectionBoxStyle
	}
	innerW := max(10, width-4)
	innerH := max(3, height-3)

	title := sectionTitleStyle.Render(m.kindToggle.ActiveLabel()) + " " + helpStyle.Render(m.chartSubtitle())
	body := m.renderChart(innerW, innerH)
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
