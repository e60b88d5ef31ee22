package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	NextSection key.Binding
	PrevSection key.Binding
	SectionHelp key.Binding

	// Chart
	Line          key.Binding
	Bar           key.Binding
	Compare       key.Binding
	BarDuration   key.Binding
	ComparePeriod key.Binding
	CopyLink      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "clear/close"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		SectionHelp: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "section help"),
		),

		Line: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "line"),
		),
		Bar: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "bar"),
		),
		Compare: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "compare"),
		),
		BarDuration: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "bar width"),
		),
		ComparePeriod: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "compare period"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.SectionHelp, k.Escape},
		{k.Line, k.Bar, k.Compare},
		{k.BarDuration, k.ComparePeriod, k.CopyLink},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
