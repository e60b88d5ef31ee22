// Package dataset provides a static, config-provided meter and group
// catalog together with its readings.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tinytelemetry/wattdeck/internal/model"
	"github.com/tinytelemetry/wattdeck/internal/usage"
)

var (
	// ErrDuplicateID is returned when two meters or two groups share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownChild is returned when a group references a missing meter or group.
	ErrUnknownChild = errors.New("unknown child")
	// ErrNotFound is returned by Readings for ids absent from the dataset.
	ErrNotFound = errors.New("not found")
)

// Spec is the config-file shape of a dataset.
type Spec struct {
	Meters []MeterSpec `mapstructure:"meters" yaml:"meters"`
	Groups []GroupSpec `mapstructure:"groups" yaml:"groups"`
}

// MeterSpec declares one meter and its evenly spaced readings.
type MeterSpec struct {
	ID       int64         `mapstructure:"id" yaml:"id"`
	Name     string        `mapstructure:"name" yaml:"name"`
	Unit     string        `mapstructure:"unit" yaml:"unit"`
	Start    string        `mapstructure:"start" yaml:"start"` // RFC 3339
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	Values   []float64     `mapstructure:"values" yaml:"values"`
}

// GroupSpec declares one group by its child ids.
type GroupSpec struct {
	ID     int64   `mapstructure:"id" yaml:"id"`
	Name   string  `mapstructure:"name" yaml:"name"`
	Meters []int64 `mapstructure:"meters" yaml:"meters"`
	Groups []int64 `mapstructure:"groups" yaml:"groups"`
}

// Static is an immutable in-memory data source.
type Static struct {
	meters   []model.Meter
	groups   []model.Group
	groupIdx map[model.Identifier]int
	readings map[model.Identifier][]model.Reading
}

// New validates spec and builds a Static dataset.
func New(spec Spec) (*Static, error) {
	s := &Static{
		groupIdx: make(map[model.Identifier]int, len(spec.Groups)),
		readings: make(map[model.Identifier][]model.Reading, len(spec.Meters)),
	}

	for _, ms := range spec.Meters {
		id := model.Identifier(ms.ID)
		if _, dup := s.readings[id]; dup {
			return nil, fmt.Errorf("meter %d: %w", ms.ID, ErrDuplicateID)
		}
		readings, err := expandReadings(ms)
		if err != nil {
			return nil, fmt.Errorf("meter %d: %w", ms.ID, err)
		}
		s.readings[id] = readings
		s.meters = append(s.meters, model.Meter{ID: id, Name: ms.Name, Unit: ms.Unit})
	}

	for _, gs := range spec.Groups {
		id := model.Identifier(gs.ID)
		if _, dup := s.groupIdx[id]; dup {
			return nil, fmt.Errorf("group %d: %w", gs.ID, ErrDuplicateID)
		}
		s.groupIdx[id] = len(s.groups)
		s.groups = append(s.groups, model.Group{
			ID:     id,
			Name:   gs.Name,
			Meters: toIdentifiers(gs.Meters),
			Groups: toIdentifiers(gs.Groups),
		})
	}

	for _, g := range s.groups {
		for _, m := range g.Meters {
			if _, ok := s.readings[m]; !ok {
				return nil, fmt.Errorf("group %d: meter %d: %w", g.ID, m, ErrUnknownChild)
			}
		}
		for _, child := range g.Groups {
			if _, ok := s.groupIdx[child]; !ok {
				return nil, fmt.Errorf("group %d: group %d: %w", g.ID, child, ErrUnknownChild)
			}
		}
	}

	return s, nil
}

func (s *Static) Meters() []model.Meter { return append([]model.Meter(nil), s.meters...) }
func (s *Static) Groups() []model.Group { return append([]model.Group(nil), s.groups...) }

// Readings returns a meter's readings, or for a group the sum of every
// meter reachable through it. Each meter is counted once even when it is
// reachable along several paths.
func (s *Static) Readings(ctx context.Context, kind model.EntityKind, id model.Identifier) ([]model.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if kind == model.EntityMeter {
		r, ok := s.readings[id]
		if !ok {
			return nil, fmt.Errorf("meter %d: %w", id, ErrNotFound)
		}
		return append([]model.Reading(nil), r...), nil
	}

	if _, ok := s.groupIdx[id]; !ok {
		return nil, fmt.Errorf("group %d: %w", id, ErrNotFound)
	}
	var series [][]model.Reading
	for _, m := range s.memberMeters(id) {
		series = append(series, s.readings[m])
	}
	return usage.Sum(series...), nil
}

// memberMeters walks child groups depth-first, skipping groups already visited.
func (s *Static) memberMeters(root model.Identifier) []model.Identifier {
	seenGroups := map[model.Identifier]bool{}
	seenMeters := map[model.Identifier]bool{}
	var meters []model.Identifier

	var walk func(id model.Identifier)
	walk = func(id model.Identifier) {
		if seenGroups[id] {
			return
		}
		seenGroups[id] = true
		g := s.groups[s.groupIdx[id]]
		for _, m := range g.Meters {
			if !seenMeters[m] {
				seenMeters[m] = true
				meters = append(meters, m)
			}
		}
		for _, child := range g.Groups {
			walk(child)
		}
	}
	walk(root)
	return meters
}

func expandReadings(ms MeterSpec) ([]model.Reading, error) {
	if len(ms.Values) == 0 {
		return nil, nil
	}
	start, err := time.Parse(time.RFC3339, ms.Start)
	if err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	interval := ms.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	out := make([]model.Reading, len(ms.Values))
	for i, v := range ms.Values {
		out[i] = model.Reading{At: start.Add(time.Duration(i) * interval), Value: v}
	}
	return out, nil
}

func toIdentifiers(ids []int64) []model.Identifier {
	out := make([]model.Identifier, len(ids))
	for i, id := range ids {
		out[i] = model.Identifier(id)
	}
	return out
}
