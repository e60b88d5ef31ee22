package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tinytelemetry/wattdeck/internal/tui/controls"
)

// helpTopics are the message ids of the multi-line help texts, in the
// order the help modal shows them.
var helpTopics = []struct{ title, body string }{
	{"groups", "help.groups"},
	{"meters", "help.meters"},
	{"graph.type", "help.graph.type"},
}

// renderHelpModalWithViewport renders the help modal using the provided viewport.
func (m *DashboardModel) renderHelpModalWithViewport(ctx ModalContext, vp *viewport.Model, width, height int) string {
	contentWidth := max(20, width-8) - 6
	return renderModalFrame(ctx, vp, m.renderHelpModalContent(contentWidth), width, height)
}

// renderHelpModalContent renders every help topic and the key bindings.
func (m *DashboardModel) renderHelpModalContent(width int) string {
	tip := controls.NewTooltip("")
	tip.SetWidth(width)
	return renderHelpContent(tip, m, width)
}

func renderHelpContent(r controls.HelpRenderer, m *DashboardModel, width int) string {
	var b strings.Builder
	for _, topic := range helpTopics {
		b.WriteString(sectionTitleStyle.Render(m.t(topic.title)))
		b.WriteString("\n")
		b.WriteString(r.Render(m.t(topic.body)))
		b.WriteString("\n\n")
	}

	b.WriteString(sectionTitleStyle.Render("Keys"))
	b.WriteString("\n")
	keyHelp := m.help
	keyHelp.Width = width
	b.WriteString(keyHelp.FullHelpView(m.keys.FullHelp()))
	return b.String()
}
