package controls

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DisclosureState is whether the link payload is shown.
type DisclosureState int

const (
	Hidden DisclosureState = iota
	Visible
)

func (s DisclosureState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// LinkCopiedMsg reports the outcome of a clipboard copy.
type LinkCopiedMsg struct {
	Err error
}

// LinkDisclosure shows or hides a precomputed chart link behind a single
// toggle button.
type LinkDisclosure struct {
	payload string
	label   string
	state   DisclosureState

	// copyFn writes to the system clipboard; replaced in tests.
	copyFn func(string) error

	focused bool
	keys    KeyMap
}

// NewLinkDisclosure starts Hidden.
func NewLinkDisclosure(label, payload string) *LinkDisclosure {
	return &LinkDisclosure{
		payload: payload,
		label:   label,
		state:   Hidden,
		copyFn:  clipboard.WriteAll,
		keys:    DefaultKeyMap(),
	}
}

// SetPayload replaces the link text.
func (d *LinkDisclosure) SetPayload(text string) { d.payload = text }

// SetLabel replaces the button label.
func (d *LinkDisclosure) SetLabel(label string) { d.label = label }

// State returns the current disclosure state.
func (d *LinkDisclosure) State() DisclosureState { return d.state }

// Toggle flips between Hidden and Visible.
func (d *LinkDisclosure) Toggle() {
	if d.state == Hidden {
		d.state = Visible
	} else {
		d.state = Hidden
	}
}

// VisibleText returns the payload while Visible and "" while Hidden.
func (d *LinkDisclosure) VisibleText() string {
	if d.state == Visible {
		return d.payload
	}
	return ""
}

// Copy returns a command writing the payload to the clipboard.
func (d *LinkDisclosure) Copy() tea.Cmd {
	payload, copyFn := d.payload, d.copyFn
	return func() tea.Msg {
		return LinkCopiedMsg{Err: copyFn(payload)}
	}
}

func (d *LinkDisclosure) SetWidth(int) {}

func (d *LinkDisclosure) Focus() tea.Cmd {
	d.focused = true
	return nil
}

func (d *LinkDisclosure) Blur()         { d.focused = false }
func (d *LinkDisclosure) Focused() bool { return d.focused }

func (d *LinkDisclosure) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.focused {
		return nil
	}

	if key.Matches(keyMsg, d.keys.Toggle) {
		d.Toggle()
	}
	return nil
}

// View renders the button and, while Visible, the payload on the lines
// below it exactly as given.
func (d *LinkDisclosure) View() string {
	style := buttonStyle
	if d.state == Visible {
		style = activeButtonStyle
	}
	if d.focused {
		style = style.Inherit(focusedButtonStyle)
	}
	button := style.Render(d.label)

	if d.state == Hidden {
		return button
	}
	return button + "\n" + d.payload
}
