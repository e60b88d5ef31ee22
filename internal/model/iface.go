package model

import "context"

// Catalog lists the meters and groups that can be charted.
type Catalog interface {
	Meters() []Meter
	Groups() []Group
}

// ReadingSource provides usage readings for a meter or group.
type ReadingSource interface {
	Readings(ctx context.Context, kind EntityKind, id Identifier) ([]Reading, error)
}

// DataSource is the read contract the dashboard is built on.
type DataSource interface {
	Catalog
	ReadingSource
}
