package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string   `json:"status" example:"ok"`
	Catalog string   `json:"catalog,omitempty" example:"file"`
	Locales []string `json:"locales,omitempty" example:"en,ru"`
}

// Health writes a 200 health report.
func Health(c echo.Context, catalog string, locales []string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Catalog: catalog,
		Locales: locales,
	})
}

// Selection writes a 200 with a roundtrip selection.
func Selection(c echo.Context, result any) error {
	return OK(c, result)
}
