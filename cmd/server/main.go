// Package main is the entry point for the roundtrip analyzer service.
//
//	@title						Roundtrip Analyzer API
//	@version					1.0.0
//	@description				Picks the cheapest train roundtrip from a ticket catalog and explains empty answers in the caller's language.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/ticket-search/roundtrip-analyzer/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ticket-search/roundtrip-analyzer/docs"

	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/catalog"
	roundtriphttp "github.com/ticket-search/roundtrip-analyzer/internal/adapter/http"
	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/http/middleware"
	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/i18n"
	"github.com/ticket-search/roundtrip-analyzer/internal/config"
	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/logger"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/timeutil"
	"github.com/ticket-search/roundtrip-analyzer/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 5 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)
	logger.Install(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("catalog", cfg.Catalog.Path).
		Bool("cache", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	loc := timeutil.MustGetLocation(cfg.Catalog.Timezone)

	provider, closeCatalog := setupCatalog(cfg, loc, log)
	defer closeCatalog()

	translator, err := i18n.New(cfg.Locale.Default)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load phrase books")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger, translator)

	setupRoutes(e, cfg, provider, translator, loc, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupCatalog builds the file catalog, fronted by the Redis snapshot cache when enabled.
// The returned func releases the cache connection.
func setupCatalog(cfg *config.Config, loc *time.Location, log *logger.Logger) (domain.CatalogProvider, func()) {
	file := catalog.NewFileProvider(cfg.Catalog.Path, catalog.FileOptions{
		Location: loc,
		Logger:   log,
	})

	if !cfg.Cache.Enabled {
		return file, func() {}
	}

	cache := catalog.NewRedisCache(catalog.RedisOptions{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	closeCache := func() {
		if err := cache.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing catalog cache")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("Catalog cache unreachable, serving from file")
		closeCache()
		return file, func() {}
	}

	cached := catalog.NewCachedProvider(file, cache, catalog.CacheOptions{
		TTL:    cfg.Cache.TTL,
		Logger: log,
	})

	// A restart may ship a new catalog file; drop the previous snapshot.
	if err := cached.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate catalog snapshot")
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("Catalog cache enabled")
	return cached, closeCache
}

// setupRoutes wires the analyzer into the HTTP handler and registers routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, provider domain.CatalogProvider, translator *i18n.Translator, loc *time.Location, log *logger.Logger) {
	settings := usecase.Settings{
		DefaultRoute: domain.Route{From: cfg.Catalog.DefaultRouteFrom, To: cfg.Catalog.DefaultRouteTo},
		AnyWeekday:   domain.Weekday(cfg.Catalog.WeekdayAny),
		Timespan:     timeutil.NewRollingTimespan(timeutil.NewRealClock(), cfg.Catalog.TimespanMonths, loc),
	}

	analyzer := usecase.NewAnalyzerUseCase(provider, settings, &usecase.Config{
		CatalogTimeout: cfg.Timeouts.Catalog,
		Logger:         log,
	})

	handler := roundtriphttp.NewRoundtripHandler(analyzer, translator, provider.Name(), settings.AnyWeekday)
	roundtriphttp.RegisterRoutes(e, handler)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
