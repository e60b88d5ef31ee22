// Package graph holds the chart selection state and its shareable link form.
package graph

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tinytelemetry/wattdeck/internal/model"
)

// ErrInvalidLink is returned by ParseLink for links that cannot be restored.
var ErrInvalidLink = errors.New("invalid chart link")

const day = 24 * time.Hour

// State is what is being charted.
type State struct {
	Meters      []model.Identifier
	Groups      []model.Identifier
	Kind        model.ChartKind
	BarDuration time.Duration
	Compare     model.ComparePeriod
}

// DefaultState returns an empty selection with default chart options.
func DefaultState() State {
	return State{
		Kind:        model.DefaultChartKind,
		BarDuration: model.DefaultBarDuration,
		Compare:     model.DefaultComparePeriod,
	}
}

// Link renders s as a shareable URL under base. Query parameters are
// emitted in a fixed order so equal states give equal links.
func Link(base string, s State) string {
	var q []string
	q = append(q, "chartType="+s.Kind.String())
	q = append(q, "meterIDs="+joinIDs(s.Meters))
	q = append(q, "groupIDs="+joinIDs(s.Groups))
	switch s.Kind {
	case model.ChartBar:
		q = append(q, "barDuration="+strconv.Itoa(int(s.BarDuration/day)))
	case model.ChartCompare:
		q = append(q, "comparePeriod="+s.Compare.String())
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(q, "&")
}

// ParseLink restores a State from a link produced by Link. Missing
// parameters keep their defaults.
func ParseLink(raw string) (State, error) {
	return ParseLinkInto(DefaultState(), raw)
}

// ParseLinkInto is ParseLink with missing parameters taken from base
// instead of the defaults.
func ParseLinkInto(base State, raw string) (State, error) {
	s := base

	u, err := url.Parse(raw)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}
	q := u.Query()

	if v := q.Get("chartType"); v != "" {
		kind, err := model.ParseChartKind(v)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidLink, err)
		}
		s.Kind = kind
	}
	if s.Meters, err = splitIDs(q.Get("meterIDs")); err != nil {
		return s, fmt.Errorf("%w: meterIDs: %w", ErrInvalidLink, err)
	}
	if s.Groups, err = splitIDs(q.Get("groupIDs")); err != nil {
		return s, fmt.Errorf("%w: groupIDs: %w", ErrInvalidLink, err)
	}
	if v := q.Get("barDuration"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 || int64(days) > math.MaxInt64/int64(day) {
			return s, fmt.Errorf("%w: barDuration %q", ErrInvalidLink, v)
		}
		s.BarDuration = time.Duration(days) * day
	}
	if v := q.Get("comparePeriod"); v != "" {
		p, err := model.ParseComparePeriod(v)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidLink, err)
		}
		s.Compare = p
	}
	return s, nil
}

func joinIDs(ids []model.Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

func splitIDs(v string) ([]model.Identifier, error) {
	if v == "" {
		return nil, nil
	}
	parts := strings.Split(v, ",")
	ids := make([]model.Identifier, 0, len(parts))
	for _, p := range parts {
		id, err := model.ParseIdentifier(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
