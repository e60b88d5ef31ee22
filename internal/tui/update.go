package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wattdeck/internal/tui/controls"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case readingsLoadedMsg:
		m.applyReadings(msg)
		return m, nil

	case controls.LinkCopiedMsg:
		m.applyLinkCopied(msg)
		return m, nil

	case SpinnerTickMsg:
		return m.handleSpinnerTick()
	}

	// Anything else (cursor blink etc.) goes to the focused control.
	if ctrl := m.focusedControl(); ctrl != nil {
		return m, ctrl.Update(msg)
	}
	return m, nil
}

// handleMouseEvent forwards mouse input to the top modal.
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}
	return m, nil
}

// setSize records the terminal size and resizes the controls.
func (m *DashboardModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	w := m.sidebarWidth() - 4 // border + padding
	for _, c := range m.allControls() {
		c.SetWidth(w)
	}
	for _, tip := range m.tips {
		tip.SetWidth(w)
	}
}
