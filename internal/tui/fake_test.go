package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tinytelemetry/wattdeck/internal/graph"
	"github.com/tinytelemetry/wattdeck/internal/model"
)

var t0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

type readingsKey struct {
	kind model.EntityKind
	id   model.Identifier
}

// fakeSource is an in-memory model.DataSource that counts Readings calls.
type fakeSource struct {
	meters   []model.Meter
	groups   []model.Group
	readings map[readingsKey][]model.Reading
	err      error

	mu    sync.Mutex
	calls []readingsKey
}

func newFakeSource() *fakeSource {
	hourly := func(n int, v float64) []model.Reading {
		out := make([]model.Reading, n)
		for i := range out {
			out[i] = model.Reading{At: t0.Add(time.Duration(i) * time.Hour), Value: v}
		}
		return out
	}
	return &fakeSource{
		meters: []model.Meter{
			{ID: 1, Name: "Meter A", Unit: "kWh"},
			{ID: 2, Name: "Meter B", Unit: "kWh"},
		},
		groups: []model.Group{
			{ID: 10, Name: "Both", Meters: []model.Identifier{1, 2}},
		},
		readings: map[readingsKey][]model.Reading{
			{model.EntityMeter, 1}:  hourly(48, 1),
			{model.EntityMeter, 2}:  hourly(48, 2),
			{model.EntityGroup, 10}: hourly(48, 3),
		},
	}
}

func (f *fakeSource) Meters() []model.Meter { return f.meters }
func (f *fakeSource) Groups() []model.Group { return f.groups }

func (f *fakeSource) Readings(_ context.Context, kind model.EntityKind, id model.Identifier) ([]model.Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, readingsKey{kind, id})
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.readings[readingsKey{kind, id}]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// echoFormatter returns message ids unchanged.
type echoFormatter struct{}

func (echoFormatter) Format(id, _ string) string { return id }

func newTestDashboard(t *testing.T, src *fakeSource) *DashboardModel {
	t.Helper()
	m := NewDashboardModel(Config{
		LinkBase: "https://example.org/graph",
		Initial:  graph.DefaultState(),
	}, src, echoFormatter{})
	m.setSize(120, 40)
	return m
}

func graphStateWith(meters, groups []model.Identifier) graph.State {
	s := graph.DefaultState()
	s.Meters = meters
	s.Groups = groups
	return s
}
