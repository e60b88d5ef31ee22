package controls

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

const defaultPickerRows = 5

// MultiSelectConfig configures a MultiSelect.
type MultiSelectConfig struct {
	Options        []model.SelectableItem
	Selected       []model.SelectableItem
	Placeholder    string
	Rows           int // visible candidate rows, defaults to 5
	OnValuesChange func(selection []model.SelectableItem) tea.Cmd
}

// MultiSelect is a type-to-filter picker over a candidate list. The checked
// set is a prop: toggling emits the would-be selection through
// OnValuesChange and the parent pushes the committed one back with
// SetSelected.
type MultiSelect struct {
	options  []model.SelectableItem
	selected []model.SelectableItem
	onChange func([]model.SelectableItem) tea.Cmd

	filter    textinput.Model
	highlight int
	offset    int
	rows      int
	width     int
	focused   bool
	keys      KeyMap
}

// NewMultiSelect panics when cfg.OnValuesChange is nil.
func NewMultiSelect(cfg MultiSelectConfig) *MultiSelect {
	if cfg.OnValuesChange == nil {
		panic("controls: MultiSelect requires OnValuesChange")
	}

	filter := textinput.New()
	filter.Placeholder = cfg.Placeholder
	filter.Prompt = "› "
	filter.CharLimit = 64

	rows := cfg.Rows
	if rows <= 0 {
		rows = defaultPickerRows
	}

	return &MultiSelect{
		options:  append([]model.SelectableItem(nil), cfg.Options...),
		selected: append([]model.SelectableItem(nil), cfg.Selected...),
		onChange: cfg.OnValuesChange,
		filter:   filter,
		rows:     rows,
		width:    30,
		keys:     DefaultKeyMap(),
	}
}

// SetOptions replaces the candidate list.
func (m *MultiSelect) SetOptions(options []model.SelectableItem) {
	m.options = append([]model.SelectableItem(nil), options...)
	m.clampHighlight()
}

// SetSelected replaces the checked set.
func (m *MultiSelect) SetSelected(selected []model.SelectableItem) {
	m.selected = append([]model.SelectableItem(nil), selected...)
}

// SetPlaceholder changes the filter placeholder text.
func (m *MultiSelect) SetPlaceholder(text string) {
	m.filter.Placeholder = text
}

// Selected returns the current checked set.
func (m *MultiSelect) Selected() []model.SelectableItem {
	return append([]model.SelectableItem(nil), m.selected...)
}

// IsSelected reports whether id is in the checked set.
func (m *MultiSelect) IsSelected(id model.Identifier) bool {
	return indexOf(m.selected, id) >= 0
}

func (m *MultiSelect) SetWidth(width int) { m.width = max(12, width) }

func (m *MultiSelect) Focus() tea.Cmd {
	m.focused = true
	return m.filter.Focus()
}

func (m *MultiSelect) Blur() {
	m.focused = false
	m.filter.Blur()
}

func (m *MultiSelect) Focused() bool { return m.focused }

// itemSource adapts candidates to fuzzy.Source.
type itemSource []model.SelectableItem

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

// Filtered returns the candidates matching the filter text, best match
// first. An empty filter returns every candidate in order.
func (m *MultiSelect) Filtered() []model.SelectableItem {
	q := strings.TrimSpace(m.filter.Value())
	if q == "" {
		return append([]model.SelectableItem(nil), m.options...)
	}

	matches := fuzzy.FindFrom(q, itemSource(m.options))
	out := make([]model.SelectableItem, 0, len(matches))
	for _, mt := range matches {
		out = append(out, m.options[mt.Index])
	}
	return out
}

// Toggle emits the selection with item added (appended) or removed.
func (m *MultiSelect) Toggle(item model.SelectableItem) tea.Cmd {
	next := make([]model.SelectableItem, 0, len(m.selected)+1)
	if i := indexOf(m.selected, item.Value); i >= 0 {
		next = append(next, m.selected[:i]...)
		next = append(next, m.selected[i+1:]...)
	} else {
		next = append(next, m.selected...)
		next = append(next, item)
	}
	return m.onChange(next)
}

// SelectAll emits the selection extended by every filtered candidate.
func (m *MultiSelect) SelectAll() tea.Cmd {
	next := append([]model.SelectableItem(nil), m.selected...)
	for _, it := range m.Filtered() {
		if indexOf(next, it.Value) < 0 {
			next = append(next, it)
		}
	}
	return m.onChange(next)
}

// Clear emits the empty selection.
func (m *MultiSelect) Clear() tea.Cmd {
	return m.onChange([]model.SelectableItem{})
}

func (m *MultiSelect) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveHighlight(-1)
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		m.moveHighlight(1)
		return nil
	case key.Matches(keyMsg, m.keys.Pick):
		filtered := m.Filtered()
		if m.highlight < len(filtered) {
			return m.Toggle(filtered[m.highlight])
		}
		return nil
	case key.Matches(keyMsg, m.keys.SelectAll):
		return m.SelectAll()
	case key.Matches(keyMsg, m.keys.Clear):
		return m.Clear()
	case key.Matches(keyMsg, m.keys.Escape):
		m.filter.SetValue("")
		m.highlight, m.offset = 0, 0
		return nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(keyMsg)
	if m.filter.Value() != before {
		m.highlight, m.offset = 0, 0
	}
	return cmd
}

func (m *MultiSelect) View() string {
	m.filter.Width = max(4, m.width-4)
	lines := []string{m.filter.View()}

	filtered := m.Filtered()
	if len(filtered) == 0 {
		lines = append(lines, mutedStyle.Render("  (no matches)"))
	}

	end := min(len(filtered), m.offset+m.rows)
	for i := m.offset; i < end; i++ {
		it := filtered[i]
		box := "[ ]"
		if m.IsSelected(it.Value) {
			box = checkedStyle.Render("[x]")
		}
		label := runewidth.Truncate(it.Label, max(1, m.width-6), "…")
		row := fmt.Sprintf("%s %s", box, label)
		if m.focused && i == m.highlight {
			row = cursorStyle.Render("›") + row
		} else {
			row = " " + row
		}
		lines = append(lines, row)
	}
	if hidden := len(filtered) - end; hidden > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  … %d more", hidden)))
	}

	lines = append(lines, m.summary())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *MultiSelect) summary() string {
	if len(m.selected) == 0 {
		return mutedStyle.Render("  none selected")
	}
	names := make([]string, len(m.selected))
	for i, it := range m.selected {
		names[i] = it.Label
	}
	return mutedStyle.Render(runewidth.Truncate("  ✓ "+strings.Join(names, ", "), m.width, "…"))
}

func (m *MultiSelect) moveHighlight(delta int) {
	m.highlight += delta
	m.clampHighlight()
	if m.highlight < m.offset {
		m.offset = m.highlight
	}
	if m.highlight >= m.offset+m.rows {
		m.offset = m.highlight - m.rows + 1
	}
}

func (m *MultiSelect) clampHighlight() {
	n := len(m.Filtered())
	if m.highlight >= n {
		m.highlight = n - 1
	}
	if m.highlight < 0 {
		m.highlight = 0
	}
	if m.offset > m.highlight {
		m.offset = m.highlight
	}
}

func indexOf(items []model.SelectableItem, id model.Identifier) int {
	for i, it := range items {
		if it.Value == id {
			return i
		}
	}
	return -1
}
