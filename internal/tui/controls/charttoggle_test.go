package controls

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

func TestChartKindToggleReportsEveryActivation(t *testing.T) {
	t.Parallel()

	for _, kind := range model.ChartKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			var chosen []model.ChartKind
			toggle := NewChartKindToggle(kind, func(k model.ChartKind) {
				chosen = append(chosen, k)
			})

			toggle.Activate(kind)
			toggle.Activate(kind)

			if want := []model.ChartKind{kind, kind}; !slices.Equal(chosen, want) {
				t.Fatalf("chosen = %v, want %v", chosen, want)
			}
			if toggle.Active() != kind {
				t.Fatalf("active = %v, want %v", toggle.Active(), kind)
			}
		})
	}
}

func TestChartKindToggleDoesNotChangeActiveOnActivation(t *testing.T) {
	t.Parallel()

	var chosen []model.ChartKind
	toggle := NewChartKindToggle(model.ChartLine, func(k model.ChartKind) {
		chosen = append(chosen, k)
	})

	toggle.Activate(model.ChartBar)

	if want := []model.ChartKind{model.ChartBar}; !slices.Equal(chosen, want) {
		t.Fatalf("chosen = %v, want %v", chosen, want)
	}
	if toggle.Active() != model.ChartLine {
		t.Fatalf("active = %v, want line until the prop changes", toggle.Active())
	}
}

func TestChartKindToggleKeys(t *testing.T) {
	t.Parallel()

	var chosen []model.ChartKind
	toggle := NewChartKindToggle(model.ChartLine, func(k model.ChartKind) {
		chosen = append(chosen, k)
	})

	// Blurred toggles ignore keys.
	toggle.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(chosen) != 0 {
		t.Fatalf("chosen = %v while blurred, want none", chosen)
	}

	toggle.Focus()
	toggle.Update(tea.KeyMsg{Type: tea.KeyEnter})
	toggle.Update(tea.KeyMsg{Type: tea.KeyRight})
	toggle.Update(tea.KeyMsg{Type: tea.KeyRight})
	toggle.Update(tea.KeyMsg{Type: tea.KeyEnter})
	toggle.Update(tea.KeyMsg{Type: tea.KeyLeft})
	toggle.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	toggle.Update(keyRunes("l"))
	toggle.Update(keyRunes("l"))
	toggle.Update(tea.KeyMsg{Type: tea.KeyEnter})

	want := []model.ChartKind{
		model.ChartLine,
		model.ChartCompare,
		model.ChartBar,
		model.ChartLine,
	}
	if !slices.Equal(chosen, want) {
		t.Fatalf("chosen = %v, want %v", chosen, want)
	}
	if toggle.Active() != model.ChartLine {
		t.Fatalf("active = %v, want line", toggle.Active())
	}
}

func TestChartKindToggleLeavesDigitsToParent(t *testing.T) {
	t.Parallel()

	var chosen []model.ChartKind
	toggle := NewChartKindToggle(model.ChartLine, func(k model.ChartKind) {
		chosen = append(chosen, k)
	})
	toggle.Focus()

	for _, d := range []string{"1", "2", "3"} {
		toggle.Update(keyRunes(d))
	}
	if len(chosen) != 0 {
		t.Fatalf("chosen = %v, want digits ignored", chosen)
	}
}

func TestChartKindToggleViewFollowsActiveProp(t *testing.T) {
	t.Parallel()

	build := func() *ChartKindToggle {
		return NewChartKindToggle(model.ChartLine, func(model.ChartKind) {},
			ChartKindOption{Kind: model.ChartLine, Label: "Line"},
			ChartKindOption{Kind: model.ChartBar, Label: "Bar"},
			ChartKindOption{Kind: model.ChartCompare, Label: "Compare"},
		)
	}

	clicked := build()
	clicked.Activate(model.ChartCompare)
	clicked.Activate(model.ChartBar)
	clicked.SetActive(model.ChartBar)

	fresh := build()
	fresh.SetActive(model.ChartBar)

	if clicked.View() != fresh.View() {
		t.Fatalf("view depends on click history:\n%s\nvs\n%s", clicked.View(), fresh.View())
	}
	if got := clicked.ActiveLabel(); got != "Bar" {
		t.Fatalf("active label = %q, want Bar", got)
	}
}

func TestChartKindToggleDefaultLabels(t *testing.T) {
	t.Parallel()

	toggle := NewChartKindToggle(model.ChartCompare, func(model.ChartKind) {})

	view := toggle.View()
	for _, k := range model.ChartKinds() {
		if !strings.Contains(view, k.String()) {
			t.Fatalf("view missing %q", k)
		}
	}
	if got := toggle.ActiveLabel(); got != "compare" {
		t.Fatalf("active label = %q, want compare", got)
	}
}

func TestChartKindToggleShowsTipWhenFocused(t *testing.T) {
	t.Parallel()

	toggle := NewChartKindToggle(model.ChartLine, func(model.ChartKind) {},
		ChartKindOption{Kind: model.ChartLine, Label: "Line", Tip: "usage over time"},
	)
	if strings.Contains(toggle.View(), "usage over time") {
		t.Fatal("tip shown while blurred")
	}

	toggle.Focus()
	if !strings.Contains(toggle.View(), "usage over time") {
		t.Fatal("tip missing while focused")
	}
}

func TestChartKindToggleNilHandlerPanics(t *testing.T) {
	t.Parallel()

	mustPanic(t, func() { NewChartKindToggle(model.ChartLine, nil) })
}
