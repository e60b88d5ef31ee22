package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func hourly(values ...float64) []model.Reading {
	out := make([]model.Reading, len(values))
	for i, v := range values {
		out[i] = model.Reading{At: t0.Add(time.Duration(i) * time.Hour), Value: v}
	}
	return out
}

func TestSum_AddsMatchingTimestamps(t *testing.T) {
	got := Sum(hourly(1, 2, 3), hourly(10, 20))

	require.Len(t, got, 3)
	assert.Equal(t, 11.0, got[0].Value)
	assert.Equal(t, 22.0, got[1].Value)
	assert.Equal(t, 3.0, got[2].Value)
	assert.True(t, got[0].At.Before(got[1].At))
}

func TestSum_SameInstantDifferentOffsets(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	a := []model.Reading{{At: t0, Value: 1}}
	b := []model.Reading{{At: t0.In(paris), Value: 2}}

	got := Sum(a, b)
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Value)
	assert.True(t, got[0].At.Equal(t0))
}

func TestSum_NoSeries(t *testing.T) {
	assert.Empty(t, Sum())
}

func TestBarTotals_Windows(t *testing.T) {
	bars := BarTotals(hourly(1, 1, 1, 1, 1), 2*time.Hour)

	require.Len(t, bars, 3)
	assert.Equal(t, []float64{2, 2, 1}, []float64{bars[0].Total, bars[1].Total, bars[2].Total})
	assert.Equal(t, t0.Add(4*time.Hour), bars[2].Start)
}

func TestBarTotals_KeepsEmptyWindows(t *testing.T) {
	readings := []model.Reading{
		{At: t0, Value: 5},
		{At: t0.Add(3 * time.Hour), Value: 7},
	}
	bars := BarTotals(readings, time.Hour)

	require.Len(t, bars, 4)
	assert.Equal(t, 0.0, bars[1].Total)
	assert.Equal(t, 7.0, bars[3].Total)
}

func TestBarTotals_Degenerate(t *testing.T) {
	assert.Nil(t, BarTotals(nil, time.Hour))
	assert.Nil(t, BarTotals(hourly(1), 0))
}

func TestCompare_CurrentAndPrevious(t *testing.T) {
	// Six hourly readings, three-hour period: current = last three.
	cur, prev := Compare(hourly(1, 2, 3, 4, 5, 6), 3*time.Hour)

	assert.Equal(t, 15.0, cur)
	assert.Equal(t, 6.0, prev)
}

func TestCompare_Empty(t *testing.T) {
	cur, prev := Compare(nil, time.Hour)
	assert.Zero(t, cur)
	assert.Zero(t, prev)
}
