// Package usecase contains the business logic for roundtrip selection.
// It normalizes caller filters and picks the best roundtrip, or a page of alternatives,
// from a catalog snapshot.
package usecase

import (
	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// DefaultAnyWeekday is the weekday sentinel meaning "no weekday constraint".
const DefaultAnyWeekday domain.Weekday = "any"

// Settings carries the catalog knowledge the selector needs.
// It is injected explicitly so the selector can be exercised with arbitrary catalogs.
type Settings struct {
	// DefaultRoute applies when the caller does not name a route
	DefaultRoute domain.Route

	// AnyWeekday is the sentinel weekday value stripped before filtering
	AnyWeekday domain.Weekday

	// Timespan is the horizon the catalog is authoritative for
	Timespan domain.Timespan
}

// DefaultSettings returns Settings with the "any" sentinel and an unbounded timespan.
func DefaultSettings(route domain.Route) Settings {
	return Settings{
		DefaultRoute: route,
		AnyWeekday:   DefaultAnyWeekday,
		Timespan:     unboundedTimespan{},
	}
}

func (s Settings) withDefaults() Settings {
	if s.AnyWeekday == "" {
		s.AnyWeekday = DefaultAnyWeekday
	}
	if s.Timespan == nil {
		s.Timespan = unboundedTimespan{}
	}
	return s
}

// unboundedTimespan treats every month as covered.
type unboundedTimespan struct{}

func (unboundedTimespan) Contains(int) bool { return true }
func (unboundedTimespan) String() string    { return "all year" }
