package timeutil

import (
	"strings"
	"time"
)

// RollingTimespan is the catalog horizon: a number of calendar months
// starting with the current one. It moves forward as the clock does.
type RollingTimespan struct {
	clock  Clock
	months int
	loc    *time.Location
}

// NewRollingTimespan creates a horizon of months calendar months.
// months is clamped to [1, 12]; a nil loc means UTC.
func NewRollingTimespan(clock Clock, months int, loc *time.Location) *RollingTimespan {
	if clock == nil {
		clock = NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	months = min(max(months, 1), 12)
	return &RollingTimespan{clock: clock, months: months, loc: loc}
}

// Contains reports whether the 0-based month falls within the horizon.
// The horizon wraps across the new year.
func (t *RollingTimespan) Contains(month int) bool {
	if month < 0 || month > 11 {
		return false
	}
	offset := (month - t.currentMonth() + 12) % 12
	return offset < t.months
}

// Months returns the 0-based months covered, starting with the current one.
func (t *RollingTimespan) Months() []int {
	current := t.currentMonth()
	out := make([]int, t.months)
	for i := range out {
		out[i] = (current + i) % 12
	}
	return out
}

// String describes the horizon as "october-december", or "all year".
func (t *RollingTimespan) String() string {
	if t.months == 12 {
		return "all year"
	}
	months := t.Months()
	first := monthName(months[0])
	if len(months) == 1 {
		return first
	}
	return first + "-" + monthName(months[len(months)-1])
}

func (t *RollingTimespan) currentMonth() int {
	return int(t.clock.Now().In(t.loc).Month()) - 1
}

func monthName(month int) string {
	return strings.ToLower(time.Month(month + 1).String())
}
