package tui

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tinytelemetry/wattdeck/internal/model"
	"github.com/tinytelemetry/wattdeck/internal/usage"
)

const day = 24 * time.Hour

// stackedBar is one bar window with a total per series.
type stackedBar struct {
	start  time.Time
	totals []float64 // indexed like the series slice
}

// comparePair is the usage of one series over the current and the
// previous compare period.
type comparePair struct {
	name              string
	current, previous float64
}

// stackBars totals every series into window-wide bars and merges bars that
// start at the same instant.
func stackBars(series []chartSeries, window time.Duration) []stackedBar {
	byStart := make(map[int64]*stackedBar)
	for i, s := range series {
		for _, b := range usage.BarTotals(s.readings, window) {
			k := b.Start.UnixNano()
			bar, ok := byStart[k]
			if !ok {
				bar = &stackedBar{start: b.Start, totals: make([]float64, len(series))}
				byStart[k] = bar
			}
			bar.totals[i] += b.Total
		}
	}

	bars := make([]stackedBar, 0, len(byStart))
	for _, b := range byStart {
		bars = append(bars, *b)
	}
	slices.SortFunc(bars, func(a, b stackedBar) int { return a.start.Compare(b.start) })
	return bars
}

// comparePairs compares the latest period of each series with the one
// before it.
func comparePairs(series []chartSeries, period model.ComparePeriod) []comparePair {
	pairs := make([]comparePair, len(series))
	for i, s := range series {
		cur, prev := usage.Compare(s.readings, period.Duration())
		pairs[i] = comparePair{name: s.name, current: cur, previous: prev}
	}
	return pairs
}

// changePercent is the relative change from previous to current. It is
// NaN when there is no previous usage.
func (p comparePair) changePercent() float64 {
	if p.previous == 0 {
		return math.NaN()
	}
	return (p.current - p.previous) / p.previous * 100
}

func hasReadings(series []chartSeries) bool {
	for _, s := range series {
		if len(s.readings) > 0 {
			return true
		}
	}
	return false
}

// chartSubtitle describes the options of the active chart kind.
func (m *DashboardModel) chartSubtitle() string {
	switch m.chartKind {
	case model.ChartBar:
		return fmt.Sprintf("%s: %dd", m.t("bar.duration"), int(m.barDuration/day))
	case model.ChartCompare:
		return fmt.Sprintf("%s: %s", m.t("compare.period"), m.t(m.comparePeriod.String()))
	}
	return ""
}

// renderChart renders the chart body for the active kind.
func (m *DashboardModel) renderChart(width, height int) string {
	switch {
	case len(m.groupIDs)+len(m.meterIDs) == 0:
		return renderChartPlaceholder(m.t("no.selection"), width, height)
	case m.loading && m.series == nil:
		return renderLoadingPlaceholder(width, height)
	case !hasReadings(m.series):
		return renderChartPlaceholder(m.t("no.data"), width, height)
	}

	var legend string
	var chart string
	switch m.chartKind {
	case model.ChartBar:
		legend = renderSeriesLegend(m.series, width)
		chart = renderBarChart(m.series, m.barDuration, width, height-lipgloss.Height(legend)-1)
	case model.ChartCompare:
		pairs := comparePairs(m.series, m.comparePeriod)
		legend = m.renderCompareLegend(pairs, width)
		chart = renderCompareChart(pairs, width, height-lipgloss.Height(legend))
	default:
		legend = renderSeriesLegend(m.series, width)
		chart = renderLineChart(m.series, width, height-lipgloss.Height(legend))
	}
	return lipgloss.JoinVertical(lipgloss.Left, chart, legend)
}

func renderChartPlaceholder(text string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, helpStyle.Render(text))
}

// renderLineChart draws one braille line per series.
func renderLineChart(series []chartSeries, width, height int) string {
	var minT, maxT time.Time
	maxV := 0.0
	for _, s := range series {
		for _, r := range s.readings {
			if minT.IsZero() || r.At.Before(minT) {
				minT = r.At
			}
			if r.At.After(maxT) {
				maxT = r.At
			}
			maxV = max(maxV, r.Value)
		}
	}
	if !maxT.After(minT) {
		maxT = minT.Add(time.Hour)
	}
	if maxV <= 0 {
		maxV = 1
	}

	lc := timeserieslinechart.New(width, max(3, height))
	lc.SetTimeRange(minT, maxT)
	lc.SetViewTimeRange(minT, maxT)
	lc.SetYRange(0, maxV)
	lc.SetViewYRange(0, maxV)

	for i, s := range series {
		name := fmt.Sprintf("%s-%d", s.kind, s.id)
		lc.SetDataSetStyle(name, lipgloss.NewStyle().Foreground(seriesColor(i)))
		for _, r := range s.readings {
			lc.PushDataSet(name, timeserieslinechart.TimePoint{Time: r.At, Value: r.Value})
		}
	}
	lc.DrawBrailleAll()
	return lc.View()
}

// renderBarChart draws stacked usage bars, newest on the right, with the
// first and last window dates underneath.
func renderBarChart(series []chartSeries, window time.Duration, width, height int) string {
	bars := stackBars(series, window)
	if len(bars) == 0 {
		return renderChartPlaceholder("", width, height)
	}

	barWidth := 1
	maxBars := max(1, width/(barWidth+1))
	if len(bars) > maxBars {
		bars = bars[len(bars)-maxBars:]
	}
	if fit := width/len(bars) - 1; fit > barWidth {
		barWidth = min(fit, 6)
	}

	bc := barchart.New(width, max(3, height),
		barchart.WithBarGap(1),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	for _, b := range bars {
		values := make([]barchart.BarValue, 0, len(b.totals))
		for i, v := range b.totals {
			if v <= 0 {
				continue
			}
			c := seriesColor(i)
			values = append(values, barchart.BarValue{
				Name:  series[i].name,
				Value: v,
				Style: lipgloss.NewStyle().Foreground(c).Background(c),
			})
		}
		bc.Push(barchart.BarData{Label: "", Values: values})
	}
	bc.Draw()

	first := bars[0].start.Format("2006-01-02")
	last := bars[len(bars)-1].start.Format("2006-01-02")
	axis := first
	if gap := width - len(first) - len(last); gap > 0 && first != last {
		axis = first + strings.Repeat(" ", gap) + last
	}
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), helpStyle.Render(axis))
}

// renderCompareChart draws a previous and a current bar per series.
func renderCompareChart(pairs []comparePair, width, height int) string {
	barWidth := max(1, min(6, width/(len(pairs)*3)-1))

	bc := barchart.New(width, max(3, height),
		barchart.WithBarGap(1),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	prevStyle := lipgloss.NewStyle().Foreground(ColorGray).Background(ColorGray)
	for i, p := range pairs {
		c := seriesColor(i)
		bc.Push(barchart.BarData{Values: []barchart.BarValue{{Name: p.name, Value: p.previous, Style: prevStyle}}})
		bc.Push(barchart.BarData{Values: []barchart.BarValue{{Name: p.name, Value: p.current, Style: lipgloss.NewStyle().Foreground(c).Background(c)}}})
		if i < len(pairs)-1 {
			bc.Push(barchart.BarData{})
		}
	}
	bc.Draw()
	return bc.View()
}

// renderSeriesLegend lists series names in their chart colours.
func renderSeriesLegend(series []chartSeries, width int) string {
	parts := make([]string, len(series))
	for i, s := range series {
		parts[i] = lipgloss.NewStyle().Foreground(seriesColor(i)).Render("■ " + s.name)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "  "))
}

// renderCompareLegend prints current and previous usage per series.
func (m *DashboardModel) renderCompareLegend(pairs []comparePair, width int) string {
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		change := "n/a"
		if pct := p.changePercent(); !math.IsNaN(pct) {
			change = fmt.Sprintf("%+.0f%%", pct)
		}
		line := fmt.Sprintf("■ %s  %s %.1f  %s %.1f  (%s)",
			p.name, m.t("current"), p.current, m.t("previous"), p.previous, change)
		lines[i] = lipgloss.NewStyle().Foreground(seriesColor(i)).Render(runewidth.Truncate(line, width, "…"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
