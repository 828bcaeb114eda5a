package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health check and the versioned roundtrip API.
func RegisterRoutes(e *echo.Echo, h *RoundtripHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	roundtrips := api.Group("/roundtrips")
	roundtrips.POST("/select", h.SelectRoundtrips)
}
