package usecase

import (
	"context"
	"time"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/logger"
)

// DefaultCatalogTimeout bounds a single catalog retrieval.
const DefaultCatalogTimeout = 3 * time.Second

// AnalyzerUseCase defines the roundtrip selection operation.
type AnalyzerUseCase interface {
	// Analyze retrieves the catalog once and selects roundtrips for the request.
	// Empty answers are successful results carrying a message; only catalog
	// retrieval failures (and invalid requests) are returned as errors.
	Analyze(ctx context.Context, req domain.SelectionRequest) (*domain.SelectionResult, error)
}

// Config contains configuration options for the use case.
type Config struct {
	CatalogTimeout time.Duration
	Logger         *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CatalogTimeout: DefaultCatalogTimeout,
		Logger:         logger.Nop(),
	}
}

type analyzerUseCase struct {
	catalog        domain.CatalogProvider
	selector       *Selector
	catalogTimeout time.Duration
	log            *logger.Logger
}

// NewAnalyzerUseCase creates an AnalyzerUseCase over the given catalog.
// If config is nil, defaults are used.
func NewAnalyzerUseCase(catalog domain.CatalogProvider, settings Settings, config *Config) AnalyzerUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.CatalogTimeout > 0 {
			cfg.CatalogTimeout = config.CatalogTimeout
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
	}

	return &analyzerUseCase{
		catalog:        catalog,
		selector:       NewSelector(settings),
		catalogTimeout: cfg.CatalogTimeout,
		log:            cfg.Logger.WithCatalog(catalog.Name()),
	}
}

// Analyze implements AnalyzerUseCase.Analyze.
func (uc *analyzerUseCase) Analyze(ctx context.Context, req domain.SelectionRequest) (*domain.SelectionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	uc.log.Debug().
		Interface("filter", describeFilter(req.Filter)).
		Bool("more", req.More).
		Int("segment", req.Segment).
		Msg("Selecting the cheapest roundtrip")

	ctx, cancel := context.WithTimeout(ctx, uc.catalogTimeout)
	defer cancel()

	start := time.Now()
	roundtrips, err := uc.catalog.All(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("Catalog retrieval failed")
		return nil, err
	}

	result, strategy := uc.selector.Select(roundtrips, req)

	event := uc.log.Debug().
		Str("strategy", string(strategy)).
		Int("catalog_size", len(roundtrips)).
		Int("results", len(result.Roundtrips)).
		Dur("elapsed", time.Since(start))
	if result.Message != nil {
		event = event.Str("message_key", string(result.Message.Key))
	}
	event.Msg("Roundtrip selection finished")

	return result, nil
}

// describeFilter flattens a filter into loggable fields.
func describeFilter(f *domain.Filter) map[string]any {
	fields := map[string]any{}
	if f == nil {
		return fields
	}
	if f.Route != nil {
		fields["route"] = f.Route.String()
	}
	if f.TotalCost != nil {
		fields["totalCost"] = *f.TotalCost
	}
	if f.Weekday != nil {
		fields["weekday"] = string(*f.Weekday)
	}
	if f.Month != nil {
		fields["month"] = *f.Month
	}
	if f.OriginatingTicket != nil {
		switch d, ok := f.OriginatingTicket.Date.Value(); {
		case ok:
			fields["date"] = d.String()
		case f.OriginatingTicket.Date.IsCleared():
			fields["date"] = nil
		}
	}
	return fields
}

// Ensure analyzerUseCase implements AnalyzerUseCase at compile time.
var _ AnalyzerUseCase = (*analyzerUseCase)(nil)
