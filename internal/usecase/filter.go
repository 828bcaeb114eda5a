package usecase

import (
	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// ApplyFilter returns the roundtrips equal on every field retained in the equality filter.
//
// Behavior:
//   - Catalog order is preserved (tie-breaks downstream depend on it)
//   - Does NOT mutate the original slice
//   - Always returns a non-nil slice
func ApplyFilter(roundtrips []domain.Roundtrip, filter domain.EqualityFilter) []domain.Roundtrip {
	result := make([]domain.Roundtrip, 0, len(roundtrips))
	for _, r := range roundtrips {
		if filter.Matches(r) {
			result = append(result, r)
		}
	}
	return result
}

// FilterByCeiling keeps roundtrips whose total cost does not exceed the ceiling.
func FilterByCeiling(roundtrips []domain.Roundtrip, ceiling float64) []domain.Roundtrip {
	result := make([]domain.Roundtrip, 0, len(roundtrips))
	for _, r := range roundtrips {
		if r.TotalCost <= ceiling {
			result = append(result, r)
		}
	}
	return result
}
