package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/wattdeck/internal/graph"
	"github.com/tinytelemetry/wattdeck/internal/i18n"
	"github.com/tinytelemetry/wattdeck/internal/model"
	"github.com/tinytelemetry/wattdeck/internal/tui/controls"
)

// Section represents different dashboard sections
type Section int

const (
	SectionGroups    Section = iota // groups picker
	SectionMeters                   // meters picker
	SectionChartKind                // chart kind buttons
	SectionLink                     // chart link disclosure
	SectionChart                    // chart pane
	sectionCount
)

// errorTTL is how long an error stays on the status line.
const errorTTL = 30 * time.Second

// defaultLoadTimeout bounds a single readings load.
const defaultLoadTimeout = 10 * time.Second

// Config holds the dashboard settings resolved by the binary.
type Config struct {
	Locale      string
	LinkBase    string
	Initial     graph.State
	LoadTimeout time.Duration
}

// chartTarget is one selected meter or group.
type chartTarget struct {
	kind model.EntityKind
	id   model.Identifier
	name string
}

// chartSeries holds the readings loaded for a target.
type chartSeries struct {
	chartTarget
	readings []model.Reading
}

// SelectionState holds the committed meter and group selections and the
// pickers that edit them.
type SelectionState struct {
	groupIDs []model.Identifier
	meterIDs []model.Identifier

	groupItems []model.SelectableItem
	meterItems []model.SelectableItem

	groupBridge *controls.SelectionBridge
	meterBridge *controls.SelectionBridge
	groupPicker *controls.MultiSelect
	meterPicker *controls.MultiSelect
}

// ChartState holds the chart configuration and the loaded series.
type ChartState struct {
	chartKind     model.ChartKind
	barDuration   time.Duration
	comparePeriod model.ComparePeriod

	kindToggle     *controls.ChartKindToggle
	linkDisclosure *controls.LinkDisclosure
	link           string

	series  []chartSeries
	loading bool
	loadSeq int // id of the newest readings request
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// NavigationState holds section focus and the per-section help markers.
type NavigationState struct {
	activeSection Section
	tips          map[Section]*controls.Tooltip
}

// DashboardModel is the energy dashboard. It owns the committed chart
// state and is the handler behind every control on the screen.
type DashboardModel struct {
	SelectionState
	ChartState
	ModalStackState
	NavigationState

	// Window dimensions
	width  int
	height int

	keys KeyMap
	help help.Model

	src         model.DataSource
	msgs        i18n.Formatter
	locale      string
	linkBase    string
	loadTimeout time.Duration

	// Last error for status line display (auto-clears after errorTTL).
	lastError   string
	lastErrorAt time.Time

	// Last informational notice, same lifetime as errors.
	notice   string
	noticeAt time.Time

	now func() time.Time
}

// NewDashboardModel creates a new dashboard model over src. Initial ids
// that src does not know are dropped.
func NewDashboardModel(cfg Config, src model.DataSource, msgs i18n.Formatter) *DashboardModel {
	if cfg.Locale == "" {
		cfg.Locale = model.DefaultLocale
	}
	if cfg.LinkBase == "" {
		cfg.LinkBase = model.DefaultLinkBase
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = defaultLoadTimeout
	}
	initial := cfg.Initial
	if initial.BarDuration <= 0 {
		initial.BarDuration = model.DefaultBarDuration
	}
	if !initial.Kind.Valid() {
		initial.Kind = model.DefaultChartKind
	}

	m := &DashboardModel{
		ChartState: ChartState{
			chartKind:     initial.Kind,
			barDuration:   initial.BarDuration,
			comparePeriod: initial.Compare,
		},
		NavigationState: NavigationState{activeSection: SectionGroups},
		keys:            DefaultKeyMap(),
		help:            help.New(),
		src:             src,
		msgs:            msgs,
		locale:          cfg.Locale,
		linkBase:        cfg.LinkBase,
		loadTimeout:     cfg.LoadTimeout,
		now:             time.Now,
	}

	m.groupItems = groupItems(src.Groups())
	m.meterItems = meterItems(src.Meters())
	m.groupIDs = knownIDs(m.groupItems, initial.Groups)
	m.meterIDs = knownIDs(m.meterItems, initial.Meters)
	if dropped := len(initial.Groups) + len(initial.Meters) - len(m.groupIDs) - len(m.meterIDs); dropped > 0 {
		slog.Warn("ignoring unknown ids in initial selection", "dropped", dropped)
	}

	m.groupBridge = controls.NewSelectionBridge(m.selectGroups)
	m.meterBridge = controls.NewSelectionBridge(m.selectMeters)

	m.groupPicker = controls.NewMultiSelect(controls.MultiSelectConfig{
		Options:        m.groupItems,
		Selected:       itemsFor(m.groupItems, m.groupIDs),
		Placeholder:    m.t("select.groups"),
		OnValuesChange: m.groupBridge.OnValuesChange,
	})
	m.meterPicker = controls.NewMultiSelect(controls.MultiSelectConfig{
		Options:        m.meterItems,
		Selected:       itemsFor(m.meterItems, m.meterIDs),
		Placeholder:    m.t("select.meters"),
		OnValuesChange: m.meterBridge.OnValuesChange,
	})

	m.kindToggle = controls.NewChartKindToggle(m.chartKind, m.changeChartType, m.chartKindOptions()...)
	m.linkDisclosure = controls.NewLinkDisclosure(m.t("toggle.link"), "")

	m.tips = make(map[Section]*controls.Tooltip)
	for s := range sectionCount {
		if id := s.helpID(); id != "" {
			m.tips[s] = controls.NewTooltip(m.t(id))
		}
	}

	m.refreshLink()
	return m
}

// Init focuses the first section and loads readings for the initial
// selection.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.focusSection(m.activeSection), m.loadReadingsCmd(), m.startSpinnerIfNeeded())
}

// t formats a message id in the active locale.
func (m *DashboardModel) t(id string) string {
	if m.msgs == nil {
		return id
	}
	return m.msgs.Format(id, m.locale)
}

func (m *DashboardModel) chartKindOptions() []controls.ChartKindOption {
	tip := m.t("tip.chart.kind")
	opts := make([]controls.ChartKindOption, 0, len(model.ChartKinds()))
	for _, k := range model.ChartKinds() {
		opts = append(opts, controls.ChartKindOption{Kind: k, Label: m.t(k.String()), Tip: tip})
	}
	return opts
}

// graphState snapshots the committed chart state.
func (m *DashboardModel) graphState() graph.State {
	return graph.State{
		Meters:      append([]model.Identifier(nil), m.meterIDs...),
		Groups:      append([]model.Identifier(nil), m.groupIDs...),
		Kind:        m.chartKind,
		BarDuration: m.barDuration,
		Compare:     m.comparePeriod,
	}
}

// refreshLink recomputes the shareable link from the committed state.
func (m *DashboardModel) refreshLink() {
	m.link = graph.Link(m.linkBase, m.graphState())
	m.linkDisclosure.SetPayload(m.link)
}

// chartTargets lists the selected groups then meters, in selection order.
func (m *DashboardModel) chartTargets() []chartTarget {
	targets := make([]chartTarget, 0, len(m.groupIDs)+len(m.meterIDs))
	for _, it := range itemsFor(m.groupItems, m.groupIDs) {
		targets = append(targets, chartTarget{kind: model.EntityGroup, id: it.Value, name: it.Label})
	}
	for _, it := range itemsFor(m.meterItems, m.meterIDs) {
		targets = append(targets, chartTarget{kind: model.EntityMeter, id: it.Value, name: it.Label})
	}
	return targets
}

func (m *DashboardModel) setError(msg string) {
	m.lastError = msg
	m.lastErrorAt = m.now()
}

func (m *DashboardModel) setNotice(msg string) {
	m.notice = msg
	m.noticeAt = m.now()
}

// PushModal pushes a modal onto the stack. Duplicate IDs are ignored.
func (m *DashboardModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *DashboardModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *DashboardModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *DashboardModel) HasModal() bool {
	return len(m.modalStack) > 0
}

func groupItems(groups []model.Group) []model.SelectableItem {
	items := make([]model.SelectableItem, len(groups))
	for i, g := range groups {
		items[i] = model.SelectableItem{Value: g.ID, Label: g.Name}
	}
	return items
}

func meterItems(meters []model.Meter) []model.SelectableItem {
	items := make([]model.SelectableItem, len(meters))
	for i, mt := range meters {
		items[i] = model.SelectableItem{Value: mt.ID, Label: mt.Name}
	}
	return items
}

// itemsFor maps ids to their candidates, keeping id order and skipping
// unknown ids.
func itemsFor(items []model.SelectableItem, ids []model.Identifier) []model.SelectableItem {
	byID := make(map[model.Identifier]model.SelectableItem, len(items))
	for _, it := range items {
		byID[it.Value] = it
	}
	out := make([]model.SelectableItem, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

func knownIDs(items []model.SelectableItem, ids []model.Identifier) []model.Identifier {
	return model.Values(itemsFor(items, ids))
}
