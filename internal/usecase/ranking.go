package usecase

import (
	"sort"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// lessByCostThenDeparture orders by total cost, then by outbound departure time.
func lessByCostThenDeparture(a, b domain.Roundtrip) bool {
	if a.TotalCost != b.TotalCost {
		return a.TotalCost < b.TotalCost
	}
	return a.OriginatingTicket.DateTime.Before(b.OriginatingTicket.DateTime)
}

// SortByCostThenDeparture returns a copy sorted ascending by (totalCost, departure).
// The sort is stable, so entries equal on both keys keep catalog order.
func SortByCostThenDeparture(roundtrips []domain.Roundtrip) []domain.Roundtrip {
	result := make([]domain.Roundtrip, len(roundtrips))
	copy(result, roundtrips)

	sort.SliceStable(result, func(i, j int) bool {
		return lessByCostThenDeparture(result[i], result[j])
	})
	return result
}

// ExcludeMin drops the single roundtrip that is minimal by (totalCost, departure).
//
// The minimum is identified by ID rather than position, so the result is correct
// even for unsorted input. Entries that merely tie with the minimum on price stay.
// Returns a new slice; an empty input yields an empty slice.
func ExcludeMin(roundtrips []domain.Roundtrip) []domain.Roundtrip {
	result := make([]domain.Roundtrip, 0, len(roundtrips))
	if len(roundtrips) == 0 {
		return result
	}

	minimum := roundtrips[0]
	for _, r := range roundtrips[1:] {
		if lessByCostThenDeparture(r, minimum) {
			minimum = r
		}
	}

	for _, r := range roundtrips {
		if r.ID != minimum.ID {
			result = append(result, r)
		}
	}
	return result
}

// Cheapest returns the roundtrip with the lowest total cost, first encountered on ties.
// Returns nil for empty input.
func Cheapest(roundtrips []domain.Roundtrip) *domain.Roundtrip {
	if len(roundtrips) == 0 {
		return nil
	}
	best := roundtrips[0]
	for _, r := range roundtrips[1:] {
		if r.TotalCost < best.TotalCost {
			best = r
		}
	}
	return &best
}

// Earliest returns the roundtrip departing first, first encountered on ties.
// Returns nil for empty input.
func Earliest(roundtrips []domain.Roundtrip) *domain.Roundtrip {
	if len(roundtrips) == 0 {
		return nil
	}
	best := roundtrips[0]
	for _, r := range roundtrips[1:] {
		if r.OriginatingTicket.DateTime.Before(best.OriginatingTicket.DateTime) {
			best = r
		}
	}
	return &best
}

// Paginate returns the zero-based segment of the given page size.
// Segments outside the list yield an empty, non-nil slice. The page count is
// checked before multiplying so a huge segment cannot overflow the offset.
func Paginate(roundtrips []domain.Roundtrip, segment, size int) []domain.Roundtrip {
	if size <= 0 || segment < 0 || segment >= (len(roundtrips)+size-1)/size {
		return []domain.Roundtrip{}
	}
	offset := segment * size
	end := offset + size
	if end > len(roundtrips) {
		end = len(roundtrips)
	}

	page := make([]domain.Roundtrip, end-offset)
	copy(page, roundtrips[offset:end])
	return page
}
