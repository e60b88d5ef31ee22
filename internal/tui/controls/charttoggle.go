package controls

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

// ChartKindOption labels one chart kind button.
type ChartKindOption struct {
	Kind  model.ChartKind
	Label string
	Tip   string
}

// ChartKindToggle is a button group over the fixed chart kinds. Which
// button renders as active comes only from the active prop; activating a
// button reports the kind and leaves the prop alone.
type ChartKindToggle struct {
	options  []ChartKindOption
	active   model.ChartKind
	onChosen func(model.ChartKind)

	cursor  int
	width   int
	focused bool
	keys    KeyMap
}

// NewChartKindToggle panics when onChosen is nil. Options are matched to
// model.ChartKinds by kind; missing labels default to the kind name.
func NewChartKindToggle(active model.ChartKind, onChosen func(model.ChartKind), options ...ChartKindOption) *ChartKindToggle {
	if onChosen == nil {
		panic("controls: ChartKindToggle requires a handler")
	}

	t := &ChartKindToggle{
		active:   active,
		onChosen: onChosen,
		width:    30,
		keys:     DefaultKeyMap(),
	}
	t.SetOptions(options...)
	return t
}

// SetOptions relabels the buttons. The set of kinds never changes.
func (t *ChartKindToggle) SetOptions(options ...ChartKindOption) {
	byKind := make(map[model.ChartKind]ChartKindOption, len(options))
	for _, o := range options {
		byKind[o.Kind] = o
	}

	t.options = t.options[:0]
	for _, k := range model.ChartKinds() {
		o, ok := byKind[k]
		if !ok {
			o = ChartKindOption{Kind: k}
		}
		if o.Label == "" {
			o.Label = k.String()
		}
		t.options = append(t.options, o)
	}
}

// SetActive sets the kind rendered as active.
func (t *ChartKindToggle) SetActive(kind model.ChartKind) { t.active = kind }

// Active returns the kind rendered as active.
func (t *ChartKindToggle) Active() model.ChartKind { return t.active }

// Activate reports kind to the handler, even when it is already active.
func (t *ChartKindToggle) Activate(kind model.ChartKind) {
	t.onChosen(kind)
}

func (t *ChartKindToggle) SetWidth(width int) { t.width = width }

func (t *ChartKindToggle) Focus() tea.Cmd {
	t.focused = true
	return nil
}

func (t *ChartKindToggle) Blur()         { t.focused = false }
func (t *ChartKindToggle) Focused() bool { return t.focused }

func (t *ChartKindToggle) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return nil
	}

	switch {
	case key.Matches(keyMsg, t.keys.Left):
		t.cursor = (t.cursor - 1 + len(t.options)) % len(t.options)
	case key.Matches(keyMsg, t.keys.Right):
		t.cursor = (t.cursor + 1) % len(t.options)
	case key.Matches(keyMsg, t.keys.Toggle):
		t.Activate(t.options[t.cursor].Kind)
	}
	return nil
}

func (t *ChartKindToggle) View() string {
	buttons := make([]string, len(t.options))
	for i, o := range t.options {
		style := buttonStyle
		if o.Kind == t.active {
			style = activeButtonStyle
		}
		if t.focused && i == t.cursor {
			style = style.Inherit(focusedButtonStyle)
		}
		buttons[i] = style.Render(o.Label)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	if t.focused {
		if tip := t.options[t.cursor].Tip; tip != "" {
			return lipgloss.JoinVertical(lipgloss.Left, row, NewTooltipText(tip).View())
		}
	}
	return row
}

// ActiveLabel returns the label of the active kind.
func (t *ChartKindToggle) ActiveLabel() string {
	for _, o := range t.options {
		if o.Kind == t.active {
			return o.Label
		}
	}
	return strings.ToTitle(t.active.String())
}
