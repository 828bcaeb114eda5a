package usecase

import (
	"strings"
	"time"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

var (
	testRoute  = domain.Route{From: "MOW", To: "LED"}
	otherRoute = domain.Route{From: "LED", To: "MOW"}
)

// departAt returns a 2026 departure time in UTC.
func departAt(month time.Month, day, hour int) time.Time {
	return time.Date(2026, month, day, hour, 0, 0, 0, time.UTC)
}

// createTestRoundtrip creates a roundtrip on the default test route.
func createTestRoundtrip(id string, cost float64, departure time.Time) domain.Roundtrip {
	return domain.Roundtrip{
		ID:        id,
		TotalCost: cost,
		OriginatingTicket: domain.Ticket{
			Date:     domain.NewDate(departure),
			DateTime: departure,
		},
		Route:   testRoute,
		Weekday: domain.WeekdayOf(departure),
		Month:   int(departure.Month()) - 1,
	}
}

func ids(roundtrips []domain.Roundtrip) []string {
	out := make([]string, len(roundtrips))
	for i, r := range roundtrips {
		out[i] = r.ID
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// stubTimespan covers a fixed set of 0-based months.
type stubTimespan struct {
	months []int
}

func (s stubTimespan) Contains(month int) bool {
	for _, m := range s.months {
		if m == month {
			return true
		}
	}
	return false
}

func (s stubTimespan) String() string {
	names := make([]string, len(s.months))
	for i, m := range s.months {
		names[i] = domain.MonthName(m)
	}
	return strings.Join(names, ", ")
}

// testSettings covers october through december 2026.
func testSettings() Settings {
	return Settings{
		DefaultRoute: testRoute,
		AnyWeekday:   DefaultAnyWeekday,
		Timespan:     stubTimespan{months: []int{9, 10, 11}},
	}
}
