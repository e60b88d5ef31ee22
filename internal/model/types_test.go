package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartKind_ZeroValueIsLine(t *testing.T) {
	var k ChartKind
	assert.Equal(t, ChartLine, k)
	assert.True(t, k.Valid())
}

func TestChartKinds_FixedOrder(t *testing.T) {
	kinds := ChartKinds()
	assert.Equal(t, []ChartKind{ChartLine, ChartBar, ChartCompare}, kinds)

	// Callers get a copy.
	kinds[0] = ChartCompare
	assert.Equal(t, ChartLine, ChartKinds()[0])
}

func TestParseChartKind(t *testing.T) {
	for _, k := range ChartKinds() {
		got, err := ParseChartKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseChartKind("pie")
	require.ErrorIs(t, err, ErrUnknownChartKind)
	assert.False(t, ChartKind(7).Valid())
}

func TestParseComparePeriod(t *testing.T) {
	got, err := ParseComparePeriod("4weeks")
	require.NoError(t, err)
	assert.Equal(t, CompareFourWeeks, got)
	assert.Equal(t, 28*CompareDay.Duration(), got.Duration())

	_, err = ParseComparePeriod("month")
	assert.ErrorIs(t, err, ErrUnknownComparePeriod)
}

func TestValues_PreservesOrder(t *testing.T) {
	items := []SelectableItem{{Value: 9, Label: "z"}, {Value: 2, Label: "b"}, {Value: 5, Label: "e"}}
	assert.Equal(t, []Identifier{9, 2, 5}, Values(items))
	assert.Empty(t, Values(nil))
}

func TestParseIdentifier(t *testing.T) {
	id, err := ParseIdentifier("42")
	require.NoError(t, err)
	assert.Equal(t, Identifier(42), id)
	assert.Equal(t, "42", id.String())

	_, err = ParseIdentifier("forty-two")
	assert.Error(t, err)
}
