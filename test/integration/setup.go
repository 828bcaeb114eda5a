// Package integration provides helpers and integration tests for the roundtrip analyzer.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the analyzer use case, localization and catalogs.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/ticket-search/roundtrip-analyzer/internal/adapter/http"
	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/http/middleware"
	"github.com/ticket-search/roundtrip-analyzer/internal/adapter/i18n"
	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/logger"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/timeutil"
	"github.com/ticket-search/roundtrip-analyzer/internal/usecase"
)

// DefaultRoute is the route used when a request names none.
var DefaultRoute = domain.Route{From: "MOW", To: "LED"}

// Now is the fixed clock reading for integration tests: october is the current month.
var Now = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.RoundtripHandler
}

// NewTestServer creates a test server with the full middleware chain around uc.
func NewTestServer(uc usecase.AnalyzerUseCase) *TestServer {
	translator := i18n.MustNew(i18n.DefaultLocale)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop().Logger, translator)

	handler := httpAdapter.NewRoundtripHandler(uc, translator, "mock", usecase.DefaultAnyWeekday)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A string body is sent verbatim; anything else is JSON-encoded.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = []byte(b)
	default:
		body, _ = json.Marshal(b)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SelectRequest posts a selection request.
func (ts *TestServer) SelectRequest(body any) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/roundtrips/select",
		Body:   body,
	})
}

// SelectRequestIn posts a selection request with an Accept-Language header.
func (ts *TestServer) SelectRequestIn(acceptLanguage string, body any) Response {
	return ts.Do(Request{
		Method:  http.MethodPost,
		Path:    "/api/v1/roundtrips/select",
		Body:    body,
		Headers: map[string]string{middleware.AcceptLanguageHeader: acceptLanguage},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSelection parses the response body as a selection response.
func (r *Response) ParseSelection() (*httpAdapter.SelectRoundtripsResponse, error) {
	var resp httpAdapter.SelectRoundtripsResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]any, error) {
	var errResp map[string]any
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultSettings returns selection settings with a three month timespan
// starting at Now: october, november and december.
func DefaultSettings() usecase.Settings {
	clock := timeutil.NewMockClock(Now)
	return usecase.Settings{
		DefaultRoute: DefaultRoute,
		AnyWeekday:   usecase.DefaultAnyWeekday,
		Timespan:     timeutil.NewRollingTimespan(clock, 3, timeutil.MustGetLocation(timeutil.MSK)),
	}
}

// CreateUseCase creates a use case over catalog with default settings and configuration.
func CreateUseCase(catalog domain.CatalogProvider) usecase.AnalyzerUseCase {
	return usecase.NewAnalyzerUseCase(catalog, DefaultSettings(), nil)
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(catalog domain.CatalogProvider, config *usecase.Config) usecase.AnalyzerUseCase {
	return usecase.NewAnalyzerUseCase(catalog, DefaultSettings(), config)
}
