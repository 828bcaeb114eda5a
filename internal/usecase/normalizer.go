package usecase

import (
	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// NormalizedFilter is a caller filter reduced to equality fields plus derived context.
type NormalizedFilter struct {
	// Equality holds only the fields tested for exact equality
	Equality domain.EqualityFilter

	// Ceiling is the price ceiling removed from the equality filter
	Ceiling *float64

	// Month is the explicit month, or the month of SpecificDate
	Month *int

	// ExplicitMonth is true when the caller supplied Month directly
	ExplicitMonth bool

	// MonthName is the lowercase English name of Month, empty when Month is nil
	MonthName string

	// SpecificDate is the requested outbound date, nil when none (or cleared)
	SpecificDate *domain.Date

	// MonthBeyondTimespan explains that Month lies outside the catalog horizon
	MonthBeyondTimespan *domain.Message
}

// HasCeiling reports whether a positive price ceiling was requested.
func (n NormalizedFilter) HasCeiling() bool {
	return n.Ceiling != nil && *n.Ceiling > 0
}

// Normalize merges the filter with the default route, strips non-equality fields
// and derives month context. It never fails and never mutates the input.
//
// Rules, in order:
//   - route defaults to settings.DefaultRoute; a caller route wins
//   - the month is the explicit month, else the month of the requested date
//   - the price ceiling is moved out of the equality filter
//   - a weekday equal to settings.AnyWeekday is dropped
//   - an explicitly cleared date is dropped; an unset date stays unset
func Normalize(filter *domain.Filter, settings Settings) NormalizedFilter {
	settings = settings.withDefaults()
	f := filter.Clone()

	route := settings.DefaultRoute
	if f.Route != nil {
		route = *f.Route
	}

	var n NormalizedFilter
	n.Equality.Route = &route

	if f.OriginatingTicket != nil {
		if d, ok := f.OriginatingTicket.Date.Value(); ok {
			n.SpecificDate = &d
			n.Equality.Date = &d
		}
	}

	switch {
	case f.Month != nil:
		m := *f.Month
		n.Month = &m
		n.ExplicitMonth = true
		n.Equality.Month = &m
	case n.SpecificDate != nil:
		m := n.SpecificDate.MonthIndex()
		n.Month = &m
	}

	if n.Month != nil {
		n.MonthName = domain.MonthName(*n.Month)
		n.MonthBeyondTimespan = domain.NewMessage(domain.MsgMonthBeyondTimespan, map[string]any{
			domain.ParamMonthName: n.MonthName,
			domain.ParamTimespan:  settings.Timespan.String(),
		})
	}

	n.Ceiling = f.TotalCost

	if f.Weekday != nil && *f.Weekday != settings.AnyWeekday {
		w := *f.Weekday
		n.Equality.Weekday = &w
	}

	return n
}
