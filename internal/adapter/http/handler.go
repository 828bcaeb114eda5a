package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/http/middleware"
	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/http/response"
	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
	"github.com/ticket-search/roundtrip-analyzer/internal/usecase"
)

// Localizer renders messages and negotiates locales.
type Localizer interface {
	domain.Translator

	// Match picks the best supported locale for an Accept-Language value or locale tag.
	Match(acceptLanguage string) string

	// Locales lists the supported locales, default first.
	Locales() []string
}

// RoundtripHandler handles HTTP requests for roundtrip selection.
type RoundtripHandler struct {
	useCase    usecase.AnalyzerUseCase
	localizer  Localizer
	catalog    string
	anyWeekday string
}

// NewRoundtripHandler creates a RoundtripHandler.
// catalog names the catalog provider for health reports; anyWeekday is the
// weekday sentinel accepted by request validation.
func NewRoundtripHandler(uc usecase.AnalyzerUseCase, localizer Localizer, catalog string, anyWeekday domain.Weekday) *RoundtripHandler {
	if anyWeekday == "" {
		anyWeekday = usecase.DefaultAnyWeekday
	}
	return &RoundtripHandler{
		useCase:    uc,
		localizer:  localizer,
		catalog:    catalog,
		anyWeekday: string(anyWeekday),
	}
}

// SelectRoundtrips handles POST /api/v1/roundtrips/select
//
// @Summary Select the cheapest roundtrip
// @Description Picks the cheapest matching roundtrip, or a page of cheap alternatives, and explains empty answers
// @Tags roundtrips
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Preferred message locale"
// @Param request body SwaggerSelectRequest true "Selection request"
// @Success 200 {object} SelectRoundtripsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/roundtrips/select [post]
func (h *RoundtripHandler) SelectRoundtrips(c echo.Context) error {
	var req SelectRoundtripsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(h.anyWeekday); err != nil {
		return h.handleValidationError(c, err)
	}

	if req.Locale != "" {
		middleware.SetLocale(c, h.localizer.Match(req.Locale))
	}
	locale := middleware.GetLocale(c)
	if locale == "" {
		locale = h.localizer.Match("")
	}

	result, err := h.useCase.Analyze(c.Request().Context(), ToSelectionRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Selection(c, ToSelectRoundtripsResponse(result, h.localizer, locale))
}

func (h *RoundtripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Timeouts are checked before
// catalog failures because a timed out load is reported as both.
func (h *RoundtripHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return response.ServiceUnavailable(c)
	}
	return response.InternalServerError(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *RoundtripHandler) Health(c echo.Context) error {
	return response.Health(c, h.catalog, h.localizer.Locales())
}
