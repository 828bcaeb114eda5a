// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/logger"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  logger.Config
	App      AppConfig
	Catalog  CatalogConfig
	Cache    CacheConfig
	Locale   LocaleConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for selection.
type TimeoutConfig struct {
	// Catalog bounds a single catalog retrieval, retries included
	Catalog time.Duration `env:"TIMEOUT_CATALOG" envDefault:"3s"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// CatalogConfig describes the roundtrip catalog and the selection defaults that depend on it.
type CatalogConfig struct {
	Path             string `env:"CATALOG_PATH" envDefault:"data/catalog.json"`
	DefaultRouteFrom string `env:"CATALOG_DEFAULT_ROUTE_FROM" envDefault:"MOW"`
	DefaultRouteTo   string `env:"CATALOG_DEFAULT_ROUTE_TO" envDefault:"LED"`
	WeekdayAny       string `env:"CATALOG_WEEKDAY_ANY" envDefault:"any"`

	// TimespanMonths is how many months, starting with the current one, tickets are sold for
	TimespanMonths int `env:"CATALOG_TIMESPAN_MONTHS" envDefault:"3"`

	// Timezone is the IANA zone catalog times are interpreted and bucketed in
	Timezone string `env:"CATALOG_TIMEZONE" envDefault:"Europe/Moscow"`
}

// CacheConfig holds the Redis catalog snapshot cache settings.
type CacheConfig struct {
	Enabled       bool          `env:"CACHE_ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// LocaleConfig holds localization settings.
type LocaleConfig struct {
	Default string `env:"LOCALE_DEFAULT" envDefault:"en"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	normalize(cfg)
	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Catalog <= 0 {
		return fmt.Errorf("TIMEOUT_CATALOG must be positive")
	}
	if cfg.Timeouts.Catalog >= cfg.Server.WriteTimeout {
		return fmt.Errorf("TIMEOUT_CATALOG (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Timeouts.Catalog, cfg.Server.WriteTimeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if err := validateCatalog(&cfg.Catalog); err != nil {
		return err
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_ENABLED is true")
		}
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive")
		}
	}

	if strings.TrimSpace(cfg.Locale.Default) == "" {
		return fmt.Errorf("LOCALE_DEFAULT must not be empty")
	}

	return nil
}

func validateCatalog(c *CatalogConfig) error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("CATALOG_PATH must not be empty")
	}
	if strings.TrimSpace(c.DefaultRouteFrom) == "" || strings.TrimSpace(c.DefaultRouteTo) == "" {
		return fmt.Errorf("CATALOG_DEFAULT_ROUTE_FROM and CATALOG_DEFAULT_ROUTE_TO must not be empty")
	}
	if strings.EqualFold(strings.TrimSpace(c.DefaultRouteFrom), strings.TrimSpace(c.DefaultRouteTo)) {
		return fmt.Errorf("CATALOG_DEFAULT_ROUTE_FROM and CATALOG_DEFAULT_ROUTE_TO must differ")
	}
	if strings.TrimSpace(c.WeekdayAny) == "" {
		return fmt.Errorf("CATALOG_WEEKDAY_ANY must not be empty")
	}
	if c.TimespanMonths < 1 || c.TimespanMonths > 12 {
		return fmt.Errorf("CATALOG_TIMESPAN_MONTHS must be between 1 and 12, got %d", c.TimespanMonths)
	}
	if _, err := timeutil.GetLocation(c.Timezone); err != nil {
		return fmt.Errorf("CATALOG_TIMEZONE %q is not a known time zone: %w", c.Timezone, err)
	}
	return nil
}

// normalize brings case-insensitive values to their canonical form.
func normalize(cfg *Config) {
	cfg.Catalog.DefaultRouteFrom = strings.ToUpper(strings.TrimSpace(cfg.Catalog.DefaultRouteFrom))
	cfg.Catalog.DefaultRouteTo = strings.ToUpper(strings.TrimSpace(cfg.Catalog.DefaultRouteTo))
	cfg.Catalog.WeekdayAny = strings.ToLower(strings.TrimSpace(cfg.Catalog.WeekdayAny))
	cfg.Locale.Default = strings.TrimSpace(cfg.Locale.Default)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
