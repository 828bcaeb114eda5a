package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/http/response"
)

// RecoveryConfig tunes Recover.
type RecoveryConfig struct {
	// DisablePrintStack omits the goroutine stack from the log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig logs stacks.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover turns a handler panic into a logged 500 response.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig is Recover with explicit configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", fmt.Sprint(r))
				if !config.DisablePrintStack {
					event = event.Str("stack", string(debug.Stack()))
				}
				event.Msg("Panic recovered")

				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
