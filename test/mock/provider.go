// Package mock provides test doubles for the roundtrip analyzer.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific catalogs).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// Catalog is a configurable implementation of domain.CatalogProvider.
type Catalog struct {
	name       string
	roundtrips []domain.Roundtrip
	err        error
	delay      time.Duration
	callCount  int
	mu         sync.Mutex
}

// NewCatalog creates a mock catalog with the given name.
// The catalog is configured using the builder methods.
func NewCatalog(name string) *Catalog {
	return &Catalog{name: name}
}

// WithRoundtrips configures the catalog contents.
func (c *Catalog) WithRoundtrips(roundtrips []domain.Roundtrip) *Catalog {
	c.roundtrips = roundtrips
	return c
}

// WithError configures the catalog to fail with err.
func (c *Catalog) WithError(err error) *Catalog {
	c.err = err
	return c
}

// WithDelay configures the catalog to wait d before answering.
func (c *Catalog) WithDelay(d time.Duration) *Catalog {
	c.delay = d
	return c
}

// Name returns the catalog's identifier.
func (c *Catalog) Name() string {
	return c.name
}

// All implements domain.CatalogProvider.All.
// A context that ends during the delay yields a retryable CatalogError.
func (c *Catalog) All(ctx context.Context) ([]domain.Roundtrip, error) {
	c.mu.Lock()
	c.callCount++
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, domain.NewRetryableCatalogError(c.name, ctx.Err())
		case <-time.After(c.delay):
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewRetryableCatalogError(c.name, err)
	}

	if c.err != nil {
		return nil, c.err
	}
	return c.roundtrips, nil
}

// CallCount returns the number of times All was called.
func (c *Catalog) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// Reset resets the call count to zero.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callCount = 0
}

var _ domain.CatalogProvider = (*Catalog)(nil)

// MSK is the fixed Moscow offset used by sample data.
var MSK = time.FixedZone("MSK", 3*60*60)

// NewRoundtrip builds a roundtrip departing at departure with derived date fields.
func NewRoundtrip(id string, route domain.Route, cost float64, departure time.Time) domain.Roundtrip {
	back := departure.AddDate(0, 0, 2)
	return domain.Roundtrip{
		ID:        id,
		TotalCost: cost,
		Route:     route,
		Weekday:   domain.WeekdayOf(departure),
		Month:     domain.NewDate(departure).MonthIndex(),
		OriginatingTicket: domain.Ticket{
			Date:     domain.NewDate(departure),
			DateTime: departure,
			Train:    "016A",
			Cost:     cost / 2,
		},
		ReturningTicket: &domain.Ticket{
			Date:     domain.NewDate(back),
			DateTime: back,
			Train:    "015A",
			Cost:     cost / 2,
		},
	}
}

// SampleRoundtrips returns count roundtrips on route, one per day from
// 2026-10-01 at 23:40 Moscow time, costing 1000, 1100, 1200 and so on.
func SampleRoundtrips(route domain.Route, count int) []domain.Roundtrip {
	base := time.Date(2026, time.October, 1, 23, 40, 0, 0, MSK)

	roundtrips := make([]domain.Roundtrip, count)
	for i := range roundtrips {
		roundtrips[i] = NewRoundtrip(
			fmt.Sprintf("%s-%02d", route, i+1),
			route,
			1000+float64(i*100),
			base.AddDate(0, 0, i),
		)
	}
	return roundtrips
}
