package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/logger"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/retry"
)

// DefaultCacheTTL is how long a catalog snapshot stays cached.
const DefaultCacheTTL = 5 * time.Minute

const cacheKeyPrefix = "roundtrip-analyzer:catalog:"

// CacheOptions configures a CachedProvider.
type CacheOptions struct {
	// TTL of the cached snapshot; zero means DefaultCacheTTL
	TTL time.Duration

	// Retry governs reloading from the source; zero value means retry.CatalogConfig
	Retry retry.Config

	Logger *logger.Logger
}

// CachedProvider serves catalog snapshots from a Cache and reloads them
// from the wrapped source on a miss. Cache failures degrade to the source.
type CachedProvider struct {
	source domain.CatalogProvider
	cache  Cache
	ttl    time.Duration
	key    string
	retry  retry.Config
	log    *logger.Logger
}

// NewCachedProvider wraps source with cache.
func NewCachedProvider(source domain.CatalogProvider, cache Cache, opts CacheOptions) *CachedProvider {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	cfg := opts.Retry
	if cfg.MaxAttempts == 0 {
		cfg = retry.CatalogConfig
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithCatalog(source.Name())

	cfg = cfg.WithRetryIf(domain.IsRetryable).WithOnRetry(func(attempt int, err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Retrying catalog load")
	})

	return &CachedProvider{
		source: source,
		cache:  cache,
		ttl:    ttl,
		key:    cacheKeyPrefix + source.Name(),
		retry:  cfg,
		log:    log,
	}
}

// Name implements domain.CatalogProvider and reports the wrapped source.
func (p *CachedProvider) Name() string {
	return p.source.Name()
}

// All implements domain.CatalogProvider.
func (p *CachedProvider) All(ctx context.Context) ([]domain.Roundtrip, error) {
	if roundtrips, ok := p.fromCache(ctx); ok {
		return roundtrips, nil
	}

	roundtrips, err := retry.DoWithResult(ctx, func() ([]domain.Roundtrip, error) {
		return p.source.All(ctx)
	}, p.retry)
	if err != nil {
		var ce *domain.CatalogError
		if !errors.As(err, &ce) {
			err = domain.NewCatalogError(p.source.Name(), err)
		}
		return nil, err
	}

	p.store(ctx, roundtrips)
	return roundtrips, nil
}

// Invalidate drops the cached snapshot so the next call reloads the source.
func (p *CachedProvider) Invalidate(ctx context.Context) error {
	return p.cache.Del(ctx, p.key)
}

func (p *CachedProvider) fromCache(ctx context.Context) ([]domain.Roundtrip, bool) {
	raw, err := p.cache.Get(ctx, p.key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			p.log.Warn().Err(err).Msg("Catalog cache read failed")
		}
		return nil, false
	}

	var roundtrips []domain.Roundtrip
	if err := json.Unmarshal([]byte(raw), &roundtrips); err != nil {
		p.log.Warn().Err(err).Msg("Discarding undecodable catalog snapshot")
		return nil, false
	}

	p.log.Debug().Int("size", len(roundtrips)).Msg("Catalog served from cache")
	return roundtrips, true
}

func (p *CachedProvider) store(ctx context.Context, roundtrips []domain.Roundtrip) {
	raw, err := json.Marshal(roundtrips)
	if err != nil {
		p.log.Warn().Err(err).Msg("Catalog snapshot encoding failed")
		return
	}
	if err := p.cache.Set(ctx, p.key, string(raw), p.ttl); err != nil {
		p.log.Warn().Err(err).Msg("Catalog cache write failed")
	}
}

var _ domain.CatalogProvider = (*CachedProvider)(nil)
