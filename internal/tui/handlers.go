package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/wattdeck/internal/model"
	"github.com/tinytelemetry/wattdeck/internal/tui/controls"
)

// readingsLoadedMsg carries readings for every selected target back to the
// dashboard. seq identifies the request so stale results can be dropped.
type readingsLoadedMsg struct {
	seq    int
	series []chartSeries
	err    error
}

// selectGroups commits a new group selection.
func (m *DashboardModel) selectGroups(ids []model.Identifier) controls.PendingOperation {
	slog.Debug("groups selected", "ids", ids)
	m.groupIDs = ids
	m.groupPicker.SetSelected(itemsFor(m.groupItems, ids))
	m.refreshLink()
	return m.loadReadingsCmd()
}

// selectMeters commits a new meter selection.
func (m *DashboardModel) selectMeters(ids []model.Identifier) controls.PendingOperation {
	slog.Debug("meters selected", "ids", ids)
	m.meterIDs = ids
	m.meterPicker.SetSelected(itemsFor(m.meterItems, ids))
	m.refreshLink()
	return m.loadReadingsCmd()
}

// changeChartType commits a chart kind. Choosing the active kind again is
// accepted and changes nothing visible.
func (m *DashboardModel) changeChartType(kind model.ChartKind) {
	slog.Debug("chart type chosen", "kind", kind)
	m.chartKind = kind
	m.kindToggle.SetActive(kind)
	m.refreshLink()
}

// cycleBarDuration steps through model.BarDurations.
func (m *DashboardModel) cycleBarDuration() {
	i := slices.Index(model.BarDurations, m.barDuration)
	m.barDuration = model.BarDurations[(i+1)%len(model.BarDurations)]
	m.refreshLink()
}

// cycleComparePeriod steps through model.ComparePeriods.
func (m *DashboardModel) cycleComparePeriod() {
	periods := model.ComparePeriods()
	i := slices.Index(periods, m.comparePeriod)
	m.comparePeriod = periods[(i+1)%len(periods)]
	m.refreshLink()
}

// loadReadingsCmd starts a load for the current selection and returns the
// command that performs it. An empty selection clears the chart instead.
func (m *DashboardModel) loadReadingsCmd() tea.Cmd {
	m.loadSeq++
	targets := m.chartTargets()
	if len(targets) == 0 {
		m.series = nil
		m.loading = false
		return nil
	}
	m.loading = true

	seq, src, timeout := m.loadSeq, m.src, m.loadTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		series, err := fetchSeries(ctx, src, targets)
		slog.Debug("readings loaded", "targets", len(targets), "took", time.Since(start), "err", err)
		return readingsLoadedMsg{seq: seq, series: series, err: err}
	}
}

// fetchSeries loads every target concurrently. The first failure cancels
// the rest.
func fetchSeries(ctx context.Context, src model.ReadingSource, targets []chartTarget) ([]chartSeries, error) {
	series := make([]chartSeries, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range targets {
		g.Go(func() error {
			readings, err := src.Readings(ctx, t.kind, t.id)
			if err != nil {
				return fmt.Errorf("load %s %q: %w", t.kind, t.name, err)
			}
			series[i] = chartSeries{chartTarget: t, readings: readings}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

// applyReadings installs a load result unless a newer load superseded it.
func (m *DashboardModel) applyReadings(msg readingsLoadedMsg) {
	if msg.seq != m.loadSeq {
		slog.Debug("dropping stale readings", "seq", msg.seq, "latest", m.loadSeq)
		return
	}
	m.loading = false
	if msg.err != nil {
		slog.Warn("readings load failed", "err", msg.err)
		m.series = nil
		m.setError(fmt.Sprintf("%s: %v", m.t("load.failed"), msg.err))
		return
	}
	m.series = msg.series
}

// applyLinkCopied reports the outcome of a clipboard copy.
func (m *DashboardModel) applyLinkCopied(msg controls.LinkCopiedMsg) {
	if msg.Err != nil {
		slog.Warn("copy link failed", "err", msg.Err)
		m.setError(fmt.Sprintf("%s: %v", m.t("copy.failed"), msg.Err))
		return
	}
	m.setNotice(m.t("copied.link"))
}
