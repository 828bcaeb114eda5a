package domain

// Filter is a caller-constructed partial constraint set over Roundtrip attributes.
// Every field is optional; a nil field means "no constraint".
type Filter struct {
	// Route restricts the direction of travel (defaults to the configured default route)
	Route *Route

	// TotalCost is a price ceiling, tested as <= rather than equality
	TotalCost *float64

	// Weekday restricts the outbound day of week; the "any" sentinel means no constraint
	Weekday *Weekday

	// OriginatingTicket holds constraints on the outbound leg
	OriginatingTicket *TicketFilter

	// Month restricts the 0-based outbound month
	Month *int
}

// TicketFilter holds constraints on a ticket.
type TicketFilter struct {
	Date DateConstraint
}

// dateState distinguishes a date that was never given from one that was explicitly cleared.
type dateState uint8

const (
	dateUnset dateState = iota
	dateCleared
	dateSet
)

// DateConstraint is a tri-state date filter: unset, explicitly cleared, or set.
// A cleared constraint is how a caller cancels a previously requested date.
type DateConstraint struct {
	state dateState
	value Date
}

// OnDate returns a constraint matching the given date.
func OnDate(d Date) DateConstraint {
	return DateConstraint{state: dateSet, value: d}
}

// ClearedDate returns a constraint that explicitly cancels date filtering.
func ClearedDate() DateConstraint {
	return DateConstraint{state: dateCleared}
}

// IsSet reports whether a concrete date was requested.
func (c DateConstraint) IsSet() bool {
	return c.state == dateSet
}

// IsCleared reports whether the caller explicitly cancelled the date constraint.
func (c DateConstraint) IsCleared() bool {
	return c.state == dateCleared
}

// Value returns the requested date and whether one was set.
func (c DateConstraint) Value() (Date, bool) {
	return c.value, c.state == dateSet
}

// Clone returns a deep copy of the filter so normalization never mutates caller input.
func (f *Filter) Clone() Filter {
	if f == nil {
		return Filter{}
	}
	out := Filter{}
	if f.Route != nil {
		r := *f.Route
		out.Route = &r
	}
	if f.TotalCost != nil {
		c := *f.TotalCost
		out.TotalCost = &c
	}
	if f.Weekday != nil {
		w := *f.Weekday
		out.Weekday = &w
	}
	if f.OriginatingTicket != nil {
		t := *f.OriginatingTicket
		out.OriginatingTicket = &t
	}
	if f.Month != nil {
		m := *f.Month
		out.Month = &m
	}
	return out
}

// EqualityFilter is the subset of filter fields tested for exact equality.
// It has no price field; the ceiling is never tested for equality.
type EqualityFilter struct {
	Route   *Route
	Weekday *Weekday
	Date    *Date
	Month   *int
}

// Matches reports whether the roundtrip equals every retained field.
func (f EqualityFilter) Matches(r Roundtrip) bool {
	if f.Route != nil && *f.Route != r.Route {
		return false
	}
	if f.Weekday != nil && *f.Weekday != r.Weekday {
		return false
	}
	if f.Date != nil && *f.Date != r.OriginatingTicket.Date {
		return false
	}
	if f.Month != nil && *f.Month != r.Month {
		return false
	}
	return true
}
