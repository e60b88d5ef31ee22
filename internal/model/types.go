package model

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Identifier is the opaque key of a meter or a group.
type Identifier int64

func (id Identifier) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseIdentifier parses the decimal form produced by Identifier.String.
func ParseIdentifier(s string) (Identifier, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing identifier %q: %w", s, err)
	}
	return Identifier(v), nil
}

// SelectableItem is one choosable entity (a meter or a group) as shown in a picker.
type SelectableItem struct {
	Value Identifier
	Label string
}

// Values returns the identifiers of items in order.
func Values(items []SelectableItem) []Identifier {
	ids := make([]Identifier, len(items))
	for i, it := range items {
		ids[i] = it.Value
	}
	return ids
}

// EntityKind tells meters and groups apart.
type EntityKind int

const (
	EntityMeter EntityKind = iota
	EntityGroup
)

func (k EntityKind) String() string {
	if k == EntityGroup {
		return "group"
	}
	return "meter"
}

// ChartKind is the chart rendering mode. The zero value is ChartLine.
type ChartKind int

const (
	ChartLine ChartKind = iota
	ChartBar
	ChartCompare
)

// ErrUnknownChartKind is returned when a chart kind name is not one of line, bar, compare.
var ErrUnknownChartKind = errors.New("unknown chart kind")

var chartKinds = []ChartKind{ChartLine, ChartBar, ChartCompare}

// ChartKinds returns the fixed, ordered set of chart kinds.
func ChartKinds() []ChartKind {
	return append([]ChartKind(nil), chartKinds...)
}

func (k ChartKind) String() string {
	switch k {
	case ChartBar:
		return "bar"
	case ChartCompare:
		return "compare"
	default:
		return "line"
	}
}

// Valid reports whether k is a member of the fixed set.
func (k ChartKind) Valid() bool {
	return k >= ChartLine && k <= ChartCompare
}

// ParseChartKind maps a wire name to its ChartKind.
func ParseChartKind(s string) (ChartKind, error) {
	for _, k := range chartKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return ChartLine, fmt.Errorf("%w: %q", ErrUnknownChartKind, s)
}

// ComparePeriod is the window compared against the one before it.
type ComparePeriod int

const (
	CompareDay ComparePeriod = iota
	CompareWeek
	CompareFourWeeks
)

// ErrUnknownComparePeriod is returned for compare period names outside day, week, 4weeks.
var ErrUnknownComparePeriod = errors.New("unknown compare period")

var comparePeriods = []ComparePeriod{CompareDay, CompareWeek, CompareFourWeeks}

// ComparePeriods returns the fixed, ordered set of compare periods.
func ComparePeriods() []ComparePeriod {
	return append([]ComparePeriod(nil), comparePeriods...)
}

func (p ComparePeriod) String() string {
	switch p {
	case CompareDay:
		return "day"
	case CompareFourWeeks:
		return "4weeks"
	default:
		return "week"
	}
}

// Duration returns the length of one period.
func (p ComparePeriod) Duration() time.Duration {
	switch p {
	case CompareDay:
		return 24 * time.Hour
	case CompareFourWeeks:
		return 28 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// ParseComparePeriod maps a wire name to its ComparePeriod.
func ParseComparePeriod(s string) (ComparePeriod, error) {
	for _, p := range comparePeriods {
		if p.String() == s {
			return p, nil
		}
	}
	return CompareWeek, fmt.Errorf("%w: %q", ErrUnknownComparePeriod, s)
}

// Meter is the basic unit of usage, usually one physical meter.
type Meter struct {
	ID   Identifier
	Name string
	Unit string
}

// Group aggregates (sums) the usage of its child meters and groups.
type Group struct {
	ID     Identifier
	Name   string
	Meters []Identifier
	Groups []Identifier
}

// Reading is one usage sample.
type Reading struct {
	At    time.Time
	Value float64
}
