package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wattdeck/internal/model"
	"github.com/tinytelemetry/wattdeck/internal/tui/controls"
)

// handleKeyPress processes keyboard input
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextSection):
		return m, m.focusSection((m.activeSection + 1) % sectionCount)
	case key.Matches(msg, m.keys.PrevSection):
		return m, m.focusSection((m.activeSection + sectionCount - 1) % sectionCount)
	case key.Matches(msg, m.keys.SectionHelp):
		if tip, ok := m.tips[m.activeSection]; ok {
			tip.Toggle()
		}
		return m, nil
	}

	// Pickers take every other key so typing into the filter works.
	if picker := m.focusedPicker(); picker != nil {
		return m, m.withSpinner(picker.Update(msg))
	}

	if handled, cmd := m.handleGlobalKeys(msg); handled {
		return m, cmd
	}

	if ctrl := m.focusedControl(); ctrl != nil {
		return m, ctrl.Update(msg)
	}
	return m, nil
}

// handleGlobalKeys handles dashboard-level shortcuts.
// Only reached when no modal is on the stack and no picker is focused.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return true, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))
		return true, nil

	case key.Matches(msg, k.Line):
		m.kindToggle.Activate(model.ChartLine)
		return true, nil
	case key.Matches(msg, k.Bar):
		m.kindToggle.Activate(model.ChartBar)
		return true, nil
	case key.Matches(msg, k.Compare):
		m.kindToggle.Activate(model.ChartCompare)
		return true, nil

	case key.Matches(msg, k.BarDuration):
		m.cycleBarDuration()
		return true, nil
	case key.Matches(msg, k.ComparePeriod):
		m.cycleComparePeriod()
		return true, nil

	case key.Matches(msg, k.CopyLink):
		return true, m.linkDisclosure.Copy()

	case key.Matches(msg, k.Escape):
		m.lastError = ""
		m.notice = ""
		return true, nil
	}
	return false, nil
}

// focusSection moves focus to s, blurring every other control.
func (m *DashboardModel) focusSection(s Section) tea.Cmd {
	for _, c := range m.allControls() {
		c.Blur()
	}
	m.activeSection = s
	if ctrl := m.focusedControl(); ctrl != nil {
		return ctrl.Focus()
	}
	return nil
}

// focusedControl returns the control of the active section, or nil for
// the chart pane.
func (m *DashboardModel) focusedControl() controls.Control {
	switch m.activeSection {
	case SectionGroups:
		return m.groupPicker
	case SectionMeters:
		return m.meterPicker
	case SectionChartKind:
		return m.kindToggle
	case SectionLink:
		return m.linkDisclosure
	}
	return nil
}

func (m *DashboardModel) focusedPicker() *controls.MultiSelect {
	switch m.activeSection {
	case SectionGroups:
		return m.groupPicker
	case SectionMeters:
		return m.meterPicker
	}
	return nil
}

func (m *DashboardModel) allControls() []controls.Control {
	return []controls.Control{m.groupPicker, m.meterPicker, m.kindToggle, m.linkDisclosure}
}

// titleID is the message id of the section title.
func (s Section) titleID() string {
	switch s {
	case SectionGroups:
		return "groups"
	case SectionMeters:
		return "meters"
	case SectionChartKind:
		return "graph.type"
	case SectionLink:
		return "chart.link"
	default:
		return "chart"
	}
}

// helpID is the message id of the section's tooltip text, or "" for
// sections without one.
func (s Section) helpID() string {
	switch s {
	case SectionGroups:
		return "help.groups"
	case SectionMeters:
		return "help.meters"
	case SectionChartKind:
		return "help.graph.type"
	}
	return ""
}
