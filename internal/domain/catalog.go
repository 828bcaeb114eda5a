package domain

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=domain

import "context"

// CatalogProvider supplies the full universe of roundtrips.
// Implementations must return a snapshot the caller may read but never mutate.
type CatalogProvider interface {
	// Name returns the provider identifier used in logs and errors.
	Name() string

	// All returns every roundtrip currently in the catalog.
	All(ctx context.Context) ([]Roundtrip, error)
}

// Timespan is the date horizon the catalog is authoritative for.
type Timespan interface {
	// Contains reports whether the 0-based month falls within the horizon.
	Contains(month int) bool

	// String returns a human-readable description of the horizon.
	String() string
}
