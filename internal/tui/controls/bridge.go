package controls

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

// PendingOperation is asynchronous work owned by whoever returned it.
// Controls hand it to the Bubble Tea runtime and never run or inspect it.
type PendingOperation = tea.Cmd

// SelectHandler commits a new selection of identifiers.
type SelectHandler func(ids []model.Identifier) PendingOperation

// SelectionBridge adapts picker selections into identifier lists for a
// SelectHandler. It keeps no state of its own.
type SelectionBridge struct {
	handler SelectHandler
}

// NewSelectionBridge panics when handler is nil.
func NewSelectionBridge(handler SelectHandler) *SelectionBridge {
	if handler == nil {
		panic("controls: SelectionBridge requires a handler")
	}
	return &SelectionBridge{handler: handler}
}

// OnValuesChange forwards the values of selection, in order, to the handler.
// It is called for every change, including a change to the empty selection,
// and returns the handler's pending operation untouched.
func (b *SelectionBridge) OnValuesChange(selection []model.SelectableItem) PendingOperation {
	return b.handler(model.Values(selection))
}
