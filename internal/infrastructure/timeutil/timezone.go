package timeutil

import (
	"fmt"
	"sync"
	"time"
	// Embedded zone database so catalog timezones resolve on minimal images.
	_ "time/tzdata"
)

// locationCache stores loaded timezone locations.
var locationCache sync.Map

// Timezone names used by the catalog.
const (
	UTC = "UTC"

	// MSK is Moscow time, the zone railway timetables are published in.
	MSK = "Europe/Moscow"
)

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics.
// Use it for the constants above.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseInLocation parses value with the first layout that matches.
// Values without an offset are read in loc.
func ParseInLocation(value string, loc *time.Location, layouts ...string) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no layouts given")
	}
	return time.Time{}, fmt.Errorf("failed to parse time %q: %w", value, lastErr)
}

// StartOfMonth returns midnight on the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ClearLocationCache drops cached locations. Used by tests.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}
