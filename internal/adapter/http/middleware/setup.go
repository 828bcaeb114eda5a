package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup installs the middleware chain. Order matters:
//  1. RequestID, so every later log line carries it
//  2. Locale, so the request log records the negotiated language
//  3. RequestLogger
//  4. Recover, innermost, so a panic still produces a logged 500
func Setup(e *echo.Echo, log zerolog.Logger, matcher LocaleMatcher) {
	SetupWithConfig(e, log, matcher, DefaultRecoveryConfig())
}

// SetupWithConfig is Setup with explicit recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, matcher LocaleMatcher, recovery RecoveryConfig) {
	e.Use(Chain(log, matcher, recovery)...)
}

// Chain returns the middleware in Setup order, for use on a route group.
func Chain(log zerolog.Logger, matcher LocaleMatcher, recovery RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		Locale(matcher),
		RequestLogger(log),
		RecoverWithConfig(log, recovery),
	}
}
