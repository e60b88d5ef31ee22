package controls

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

var (
	meterA = model.SelectableItem{Value: 1, Label: "Meter A"}
	meterB = model.SelectableItem{Value: 2, Label: "Meter B"}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// wiredPicker connects a picker to a bridge the way the dashboard does:
// the handler records ids and pushes the committed selection back.
func wiredPicker(t *testing.T, options ...model.SelectableItem) (*MultiSelect, *[][]model.Identifier) {
	t.Helper()

	var calls [][]model.Identifier
	var picker *MultiSelect
	bridge := NewSelectionBridge(func(ids []model.Identifier) PendingOperation {
		calls = append(calls, ids)
		return nil
	})
	picker = NewMultiSelect(MultiSelectConfig{
		Options: options,
		OnValuesChange: func(sel []model.SelectableItem) tea.Cmd {
			cmd := bridge.OnValuesChange(sel)
			picker.SetSelected(sel)
			return cmd
		},
	})
	return picker, &calls
}

// lastCall fails unless exactly n handler calls were made and returns the
// ids of the newest one.
func lastCall(t *testing.T, calls [][]model.Identifier, n int) []model.Identifier {
	t.Helper()
	if len(calls) != n {
		t.Fatalf("handler calls = %d, want %d", len(calls), n)
	}
	return calls[n-1]
}

func TestMultiSelectSelectThenDeselect(t *testing.T) {
	t.Parallel()

	picker, calls := wiredPicker(t, meterA, meterB)

	picker.Toggle(meterA)
	picker.Toggle(meterB)
	if got, want := lastCall(t, *calls, 2), []model.Identifier{1, 2}; !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}

	picker.Toggle(meterA)
	if got, want := lastCall(t, *calls, 3), []model.Identifier{2}; !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if got := picker.Selected(); !slices.Equal(got, []model.SelectableItem{meterB}) {
		t.Fatalf("selected = %v, want [Meter B]", got)
	}
}

func TestMultiSelectKeyboardToggle(t *testing.T) {
	t.Parallel()

	picker, calls := wiredPicker(t, meterA, meterB)
	picker.Focus()

	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})
	picker.Update(tea.KeyMsg{Type: tea.KeyDown})
	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got, want := lastCall(t, *calls, 2), []model.Identifier{1, 2}; !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if !picker.IsSelected(1) || !picker.IsSelected(2) {
		t.Fatal("both meters should be selected")
	}
}

func TestMultiSelectIgnoresKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	picker, calls := wiredPicker(t, meterA, meterB)

	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(*calls) != 0 {
		t.Fatalf("handler calls = %d, want 0 while blurred", len(*calls))
	}
}

func TestMultiSelectDoesNotMutateWithoutProps(t *testing.T) {
	t.Parallel()

	var emitted [][]model.SelectableItem
	picker := NewMultiSelect(MultiSelectConfig{
		Options: []model.SelectableItem{meterA, meterB},
		OnValuesChange: func(sel []model.SelectableItem) tea.Cmd {
			emitted = append(emitted, sel)
			return nil
		},
	})

	picker.Toggle(meterA)
	if len(emitted) != 1 || !slices.Equal(emitted[0], []model.SelectableItem{meterA}) {
		t.Fatalf("emitted = %v, want one [Meter A]", emitted)
	}
	if got := picker.Selected(); len(got) != 0 {
		t.Fatalf("selected = %v, want unchanged until props arrive", got)
	}
}

func TestMultiSelectClearEmitsEmptySelection(t *testing.T) {
	t.Parallel()

	picker, calls := wiredPicker(t, meterA, meterB)
	picker.SetSelected([]model.SelectableItem{meterA, meterB})
	picker.Focus()

	picker.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	ids := lastCall(t, *calls, 1)
	if ids == nil || len(ids) != 0 {
		t.Fatalf("ids = %#v, want an empty list", ids)
	}
	if got := picker.Selected(); len(got) != 0 {
		t.Fatalf("selected = %v, want none", got)
	}
}

func TestMultiSelectSelectAllKeepsExistingOrder(t *testing.T) {
	t.Parallel()

	meterC := model.SelectableItem{Value: 3, Label: "Meter C"}
	picker, calls := wiredPicker(t, meterA, meterB, meterC)
	picker.SetSelected([]model.SelectableItem{meterC})

	picker.SelectAll()

	if got, want := lastCall(t, *calls, 1), []model.Identifier{3, 1, 2}; !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestMultiSelectFilter(t *testing.T) {
	t.Parallel()

	gym := model.SelectableItem{Value: 5, Label: "Gym"}
	picker, calls := wiredPicker(t, meterA, gym, meterB)
	picker.Focus()

	if got := len(picker.Filtered()); got != 3 {
		t.Fatalf("filtered = %d, want 3", got)
	}

	for _, r := range "gym" {
		picker.Update(keyRunes(string(r)))
	}
	if got := picker.Filtered(); !slices.Equal(got, []model.SelectableItem{gym}) {
		t.Fatalf("filtered = %v, want [Gym]", got)
	}

	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := lastCall(t, *calls, 1), []model.Identifier{5}; !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}

	picker.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := len(picker.Filtered()); got != 3 {
		t.Fatalf("filtered = %d after esc, want 3", got)
	}
}

func TestMultiSelectView(t *testing.T) {
	t.Parallel()

	picker, _ := wiredPicker(t, meterA, meterB)
	picker.SetWidth(40)

	view := picker.View()
	for _, want := range []string{"Meter A", "Meter B", "none selected"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	picker.SetSelected([]model.SelectableItem{meterB})
	if !strings.Contains(picker.View(), "[x]") {
		t.Fatal("selected meter not marked")
	}
}

func TestMultiSelectNilHandlerPanics(t *testing.T) {
	t.Parallel()

	mustPanic(t, func() { NewMultiSelect(MultiSelectConfig{}) })
}
