// Package usage derives chart series from raw meter readings.
package usage

import (
	"sort"
	"time"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

// Bar is the total usage within one window.
type Bar struct {
	Start time.Time
	Total float64
}

// Sum merges series by timestamp, adding values that share a timestamp.
// The result is sorted by time.
func Sum(series ...[]model.Reading) []model.Reading {
	totals := make(map[int64]*model.Reading)
	for _, s := range series {
		for _, r := range s {
			k := r.At.UnixNano()
			if t, ok := totals[k]; ok {
				t.Value += r.Value
				continue
			}
			totals[k] = &model.Reading{At: r.At, Value: r.Value}
		}
	}

	out := make([]model.Reading, 0, len(totals))
	for _, r := range totals {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

// BarTotals sums readings into consecutive windows aligned on the earliest
// reading. Empty windows between readings are kept with a zero total.
func BarTotals(readings []model.Reading, window time.Duration) []Bar {
	if len(readings) == 0 || window <= 0 {
		return nil
	}

	sorted := sortedCopy(readings)
	origin := sorted[0].At
	last := int(sorted[len(sorted)-1].At.Sub(origin) / window)

	bars := make([]Bar, last+1)
	for i := range bars {
		bars[i].Start = origin.Add(time.Duration(i) * window)
	}
	for _, r := range sorted {
		bars[int(r.At.Sub(origin)/window)].Total += r.Value
	}
	return bars
}

// Compare sums usage in the period ending at the newest reading (current)
// and in the period immediately before it (previous).
func Compare(readings []model.Reading, period time.Duration) (current, previous float64) {
	if len(readings) == 0 || period <= 0 {
		return 0, 0
	}

	end := readings[0].At
	for _, r := range readings {
		if r.At.After(end) {
			end = r.At
		}
	}
	currentStart := end.Add(-period)
	previousStart := currentStart.Add(-period)

	for _, r := range readings {
		switch {
		case r.At.After(currentStart):
			current += r.Value
		case r.At.After(previousStart):
			previous += r.Value
		}
	}
	return current, previous
}

func sortedCopy(readings []model.Reading) []model.Reading {
	out := append([]model.Reading(nil), readings...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}
