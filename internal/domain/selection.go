package domain

import "fmt"

// PageSize is the number of alternatives returned per "more" segment.
const PageSize = 5

// SelectionRequest is one call into the analyzer.
type SelectionRequest struct {
	// Filter is the caller's partial constraint set (may be nil)
	Filter *Filter

	// More requests a paginated batch of cheap alternatives
	More bool

	// Segment is the zero-based page within the "more" batch
	Segment int
}

// Validate checks request fields that the selector cannot degrade gracefully.
func (r *SelectionRequest) Validate() error {
	if r.Segment < 0 {
		return fmt.Errorf("%w: segment must be non-negative, got %d", ErrInvalidRequest, r.Segment)
	}
	if r.Filter == nil {
		return nil
	}
	if m := r.Filter.Month; m != nil && (*m < 0 || *m > 11) {
		return fmt.Errorf("%w: month must be between 0 and 11, got %d", ErrInvalidRequest, *m)
	}
	if c := r.Filter.TotalCost; c != nil && *c < 0 {
		return fmt.Errorf("%w: totalCost must be non-negative", ErrInvalidRequest)
	}
	return nil
}

// SelectionResult is the outcome of a selection.
// Roundtrips is nil when no result applies; a non-nil empty slice is an empty page.
type SelectionResult struct {
	Roundtrips []Roundtrip `json:"roundtrips"`
	Message    *Message    `json:"message,omitempty"`
}

// HasResults returns true if at least one roundtrip was selected.
func (r *SelectionResult) HasResults() bool {
	return r != nil && len(r.Roundtrips) > 0
}
