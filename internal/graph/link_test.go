package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

func TestLink_Line(t *testing.T) {
	s := DefaultState()
	s.Meters = []model.Identifier{1, 2}
	s.Groups = []model.Identifier{10}

	got := Link("https://oed.example/graph", s)
	assert.Equal(t, "https://oed.example/graph?chartType=line&meterIDs=1,2&groupIDs=10", got)
}

func TestLink_BarAndCompareOptions(t *testing.T) {
	s := DefaultState()
	s.Kind = model.ChartBar
	s.BarDuration = 7 * 24 * time.Hour
	assert.Contains(t, Link("b", s), "barDuration=7")
	assert.NotContains(t, Link("b", s), "comparePeriod")

	s.Kind = model.ChartCompare
	s.Compare = model.CompareFourWeeks
	assert.Contains(t, Link("b", s), "comparePeriod=4weeks")
	assert.NotContains(t, Link("b", s), "barDuration")
}

func TestLink_BaseWithQuery(t *testing.T) {
	got := Link("https://oed.example/?site=north", DefaultState())
	assert.Equal(t, "https://oed.example/?site=north&chartType=line&meterIDs=&groupIDs=", got)
}

func TestParseLink_RoundTrip(t *testing.T) {
	s := DefaultState()
	s.Kind = model.ChartBar
	s.Meters = []model.Identifier{3, 1}
	s.Groups = []model.Identifier{11}
	s.BarDuration = 28 * 24 * time.Hour

	got, err := ParseLink(Link("https://oed.example/graph", s))
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestParseLink_EmptyKeepsDefaults(t *testing.T) {
	got, err := ParseLink("https://oed.example/graph")
	require.NoError(t, err)
	assert.Equal(t, DefaultState(), got)
}

func TestParseLink_Invalid(t *testing.T) {
	for _, raw := range []string{
		"https://x/?chartType=pie",
		"https://x/?meterIDs=1,b",
		"https://x/?groupIDs=,",
		"https://x/?barDuration=0",
		"https://x/?chartType=bar&barDuration=200000",
		"https://x/?comparePeriod=year",
		"://bad",
	} {
		_, err := ParseLink(raw)
		assert.ErrorIs(t, err, ErrInvalidLink, raw)
	}
}

func TestParseLinkInto_KeepsBaseForMissingParams(t *testing.T) {
	base := DefaultState()
	base.Kind = model.ChartBar
	base.BarDuration = 7 * 24 * time.Hour
	base.Compare = model.CompareFourWeeks

	got, err := ParseLinkInto(base, "https://x/graph?chartType=line&meterIDs=1&groupIDs=")
	require.NoError(t, err)
	assert.Equal(t, model.ChartLine, got.Kind)
	assert.Equal(t, []model.Identifier{1}, got.Meters)
	assert.Equal(t, 7*24*time.Hour, got.BarDuration)
	assert.Equal(t, model.CompareFourWeeks, got.Compare)
}
