package model

import "time"

// Shared defaults used by the binary and the TUI.
const (
	DefaultChartKind     = ChartLine
	DefaultLocale        = "en"
	DefaultBarDuration   = 24 * time.Hour
	DefaultComparePeriod = CompareWeek
	DefaultLinkBase      = "https://openenergydashboard.example.org/graph"
)

// BarDurations are the bar widths the dashboard cycles through.
var BarDurations = []time.Duration{
	24 * time.Hour,
	7 * 24 * time.Hour,
	28 * 24 * time.Hour,
}
