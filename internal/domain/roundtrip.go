// Package domain contains the core business entities and rules for the roundtrip analyzer.
// These entities are catalog-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format of a calendar date.
const dateLayout = "2006-01-02"

// Roundtrip represents a single catalog entry: a paired outbound/return travel option.
// Roundtrips are read-only snapshots owned by the catalog provider.
type Roundtrip struct {
	// ID is the unique identifier of this catalog entry
	ID string `json:"id"`

	// TotalCost is the combined price of both tickets
	TotalCost float64 `json:"totalCost"`

	// OriginatingTicket is the outbound leg
	OriginatingTicket Ticket `json:"originatingTicket"`

	// ReturningTicket is the return leg (informational, never filtered on)
	ReturningTicket *Ticket `json:"returningTicket,omitempty"`

	// Route identifies the direction of travel
	Route Route `json:"route"`

	// Weekday is the day of week of the outbound departure (e.g., "friday")
	Weekday Weekday `json:"weekday"`

	// Month is the 0-based calendar month of the outbound departure (0 = january)
	Month int `json:"month"`
}

// Ticket describes one leg of a roundtrip.
type Ticket struct {
	// Date is the calendar date of departure
	Date Date `json:"date"`

	// DateTime is the exact scheduled departure time
	DateTime time.Time `json:"datetime"`

	// Train is an optional carrier-specific service number (e.g., "016A")
	Train string `json:"train,omitempty"`

	// Cost is the price of this leg alone
	Cost float64 `json:"cost,omitempty"`
}

// Route is a directed pair of stations.
type Route struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// String returns the route as "FROM-TO".
func (r Route) String() string {
	return r.From + "-" + r.To
}

// IsZero reports whether neither endpoint is set.
func (r Route) IsZero() bool {
	return r.From == "" && r.To == ""
}

// Weekday is a lowercase English day name, or the configured "any" sentinel in filters.
type Weekday string

// WeekdayOf returns the Weekday of the given time.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(strings.ToLower(t.Weekday().String()))
}

// IsValid reports whether w names a real day of the week.
func (w Weekday) IsValid() bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == string(w) {
			return true
		}
	}
	return false
}

// Date is a calendar date without a time of day.
// Two dates are equal when year, month and day match, regardless of time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate extracts the calendar date of t in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q", ErrInvalidRequest, s)
	}
	return NewDate(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MonthIndex returns the 0-based month of the date (0 = january).
func (d Date) MonthIndex() int {
	return int(d.Month) - 1
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthName returns the lowercase English name of a 0-based month.
// It returns an empty string when month is out of range.
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return strings.ToLower(time.Month(month + 1).String())
}
