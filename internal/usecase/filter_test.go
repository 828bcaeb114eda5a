package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

func filterCatalog() []domain.Roundtrip {
	reverse := createTestRoundtrip("reverse", 70, departAt(10, 2, 9))
	reverse.Route = otherRoute

	return []domain.Roundtrip{
		createTestRoundtrip("fri-oct", 100, departAt(10, 2, 9)),  // friday
		createTestRoundtrip("sat-oct", 90, departAt(10, 3, 9)),   // saturday
		createTestRoundtrip("fri-nov", 120, departAt(11, 6, 18)), // friday
		reverse,
	}
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.EqualityFilter
		expected []string
	}{
		{
			name:     "empty filter keeps everything",
			filter:   domain.EqualityFilter{},
			expected: []string{"fri-oct", "sat-oct", "fri-nov", "reverse"},
		},
		{
			name:     "route",
			filter:   domain.EqualityFilter{Route: &otherRoute},
			expected: []string{"reverse"},
		},
		{
			name:     "weekday",
			filter:   domain.EqualityFilter{Route: &testRoute, Weekday: ptr(domain.Weekday("friday"))},
			expected: []string{"fri-oct", "fri-nov"},
		},
		{
			name:     "month",
			filter:   domain.EqualityFilter{Month: ptr(10)},
			expected: []string{"fri-nov"},
		},
		{
			name:     "date ignores time of day",
			filter:   domain.EqualityFilter{Date: ptr(domain.Date{Year: 2026, Month: 10, Day: 2})},
			expected: []string{"fri-oct", "reverse"},
		},
		{
			name:     "no match returns empty",
			filter:   domain.EqualityFilter{Month: ptr(0)},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyFilter(filterCatalog(), tt.filter)
			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestApplyFilter_ReturnedEntriesSatisfyFilter(t *testing.T) {
	friday := domain.Weekday("friday")
	filters := []domain.EqualityFilter{
		{Route: &testRoute},
		{Route: &testRoute, Weekday: &friday},
		{Weekday: &friday, Month: ptr(9)},
		{Route: &otherRoute, Month: ptr(9)},
	}

	for _, f := range filters {
		for _, r := range ApplyFilter(filterCatalog(), f) {
			if f.Route != nil {
				assert.Equal(t, *f.Route, r.Route)
			}
			if f.Weekday != nil {
				assert.Equal(t, *f.Weekday, r.Weekday)
			}
			if f.Month != nil {
				assert.Equal(t, *f.Month, r.Month)
			}
		}
	}
}

func TestFilterByCeiling(t *testing.T) {
	result := FilterByCeiling(filterCatalog(), 90)
	assert.Equal(t, []string{"sat-oct", "reverse"}, ids(result))

	assert.Empty(t, FilterByCeiling(filterCatalog(), 10))
}
