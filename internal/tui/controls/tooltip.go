package controls

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer turns help text into a UI fragment.
type HelpRenderer interface {
	Render(text string) string
}

// lineBreak separates lines in multi-line help text.
const lineBreak = "<br>"

// Tooltip is a help marker that expands to multi-line explanatory text.
type Tooltip struct {
	text     string
	width    int
	expanded bool
}

// NewTooltip returns a collapsed tooltip.
func NewTooltip(text string) *Tooltip {
	return &Tooltip{text: text, width: 40}
}

func (t *Tooltip) SetText(text string) { t.text = text }
func (t *Tooltip) SetWidth(width int)  { t.width = max(10, width) }
func (t *Tooltip) Toggle()             { t.expanded = !t.expanded }
func (t *Tooltip) Expanded() bool      { return t.expanded }

// Lines splits the text on <br> separators, trimming surrounding space.
func (t *Tooltip) Lines() []string {
	return SplitHelpLines(t.text)
}

// View renders "(?)" when collapsed and the wrapped text when expanded.
func (t *Tooltip) View() string {
	if !t.expanded {
		return mutedStyle.Render("(?)")
	}
	return t.Render(t.text)
}

// Render implements HelpRenderer.
func (t *Tooltip) Render(text string) string {
	style := tipStyle.Width(t.width)
	lines := SplitHelpLines(text)
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SplitHelpLines splits help text on <br> separators.
func SplitHelpLines(text string) []string {
	parts := strings.Split(text, lineBreak)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TooltipText is a one-line tip shown beside a focused control.
type TooltipText struct {
	tip string
}

func NewTooltipText(tip string) TooltipText { return TooltipText{tip: tip} }

func (t TooltipText) View() string {
	if t.tip == "" {
		return ""
	}
	return tipStyle.Render("ⓘ " + t.tip)
}
