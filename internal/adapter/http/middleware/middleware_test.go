package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMatcher supports "en" and "ru" and picks the first one mentioned.
type stubMatcher struct{}

func (stubMatcher) Match(acceptLanguage string) string {
	if strings.HasPrefix(acceptLanguage, "ru") {
		return "ru"
	}
	return "en"
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// logEntries decodes one JSON object per line.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func ok(c echo.Context) error { return c.String(http.StatusOK, "ok") }

// =====================================================
// Request ID
// =====================================================

func TestRequestID(t *testing.T) {
	t.Run("generates a uuid", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/health")

		require.NoError(t, RequestID()(ok)(c))

		reqID := rec.Header().Get(RequestIDHeader)
		assert.Len(t, reqID, 36)
		assert.Equal(t, reqID, GetRequestID(c))
	})

	t.Run("propagates the caller's id", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/health")
		c.Request().Header.Set(RequestIDHeader, "caller-id-1")

		require.NoError(t, RequestID()(ok)(c))

		assert.Equal(t, "caller-id-1", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "caller-id-1", GetRequestID(c))
	})

	t.Run("empty outside the middleware", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/health")
		assert.Empty(t, GetRequestID(c))
	})
}

// =====================================================
// Locale
// =====================================================

func TestLocale(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: "en"},
		{name: "russian", header: "ru-RU,ru;q=0.9", want: "ru"},
		{name: "other", header: "de", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/api/v1/roundtrips/select")
			if tt.header != "" {
				c.Request().Header.Set(AcceptLanguageHeader, tt.header)
			}

			require.NoError(t, Locale(stubMatcher{})(ok)(c))

			assert.Equal(t, tt.want, GetLocale(c))
			assert.Equal(t, tt.want, rec.Header().Get(ContentLanguageHeader))
		})
	}
}

func TestSetLocale_Overrides(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/")
	handler := Locale(stubMatcher{})(func(c echo.Context) error {
		SetLocale(c, "ru")
		return ok(c)
	})

	require.NoError(t, handler(c))

	assert.Equal(t, "ru", GetLocale(c))
	assert.Equal(t, "ru", rec.Header().Get(ContentLanguageHeader))
}

// =====================================================
// Request logging
// =====================================================

func TestRequestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newContext(http.MethodPost, "/api/v1/roundtrips/select?debug=1")
	c.Request().Header.Set("User-Agent", "TestAgent/1.0")
	c.Request().Header.Set("X-Real-IP", "192.168.1.100")
	c.Set(requestIDKey, "req-123")
	c.Set(localeKey, "ru")

	require.NoError(t, RequestLogger(zerolog.New(&buf))(ok)(c))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/roundtrips/select", entry["path"])
	assert.Equal(t, "debug=1", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Equal(t, "ru", entry["locale"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "info"},
		{status: http.StatusBadRequest, level: "warn"},
		{status: http.StatusServiceUnavailable, level: "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			c, _ := newContext(http.MethodGet, "/")

			handler := RequestLogger(zerolog.New(&buf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entry := logEntries(t, &buf)[0]
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.level, entry["level"])
		})
	}
}

func TestRequestLogger_RendersHandlerErrors(t *testing.T) {
	var buf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/missing")

	handler := RequestLogger(zerolog.New(&buf))(func(c echo.Context) error {
		return echo.ErrNotFound
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(404), logEntries(t, &buf)[0]["status"])
}

// =====================================================
// Recovery
// =====================================================

func TestRecover_Returns500(t *testing.T) {
	var buf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/panic")
	c.Set(requestIDKey, "panic-id")

	handler := Recover(zerolog.New(&buf))(func(c echo.Context) error {
		panic("catalog exploded")
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body["code"])

	entry := logEntries(t, &buf)[0]
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "panic-id", entry["request_id"])
	assert.Equal(t, "catalog exploded", entry["panic"])
	assert.Contains(t, entry["stack"], "goroutine")
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_RuntimeErrorPanic(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/panic")

	handler := Recover(zerolog.Nop())(func(c echo.Context) error {
		var roundtrips []int
		_ = roundtrips[3]
		return nil
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/")

	require.NoError(t, Recover(zerolog.New(&buf))(ok)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRecoverWithConfig_NoStack(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/panic")

	handler := RecoverWithConfig(zerolog.New(&buf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("quiet")
	})
	_ = handler(c)

	assert.NotContains(t, logEntries(t, &buf)[0], "stack")
}

// =====================================================
// Chain
// =====================================================

func TestSetup_FullChain(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&buf), stubMatcher{})

	e.GET("/ok", ok)
	e.GET("/panic", func(c echo.Context) error { panic("boom") })

	t.Run("normal request", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(AcceptLanguageHeader, "ru")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "ru", rec.Header().Get(ContentLanguageHeader))

		entry := logEntries(t, &buf)[0]
		assert.Equal(t, rec.Header().Get(RequestIDHeader), entry["request_id"])
		assert.Equal(t, "ru", entry["locale"])
	})

	t.Run("panic is logged and answered", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var messages []any
		for _, entry := range logEntries(t, &buf) {
			messages = append(messages, entry["message"])
		}
		assert.Equal(t, []any{"Panic recovered", "HTTP request"}, messages)
	})
}

func TestSetupWithConfig_DisablesStack(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	SetupWithConfig(e, zerolog.New(&buf), stubMatcher{}, RecoveryConfig{DisablePrintStack: true})
	e.GET("/panic", func(c echo.Context) error { panic("quiet") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/panic", nil))

	for _, entry := range logEntries(t, &buf) {
		assert.NotContains(t, entry, "stack")
	}
}

func TestChain_Order(t *testing.T) {
	chain := Chain(zerolog.Nop(), stubMatcher{}, DefaultRecoveryConfig())
	assert.Len(t, chain, 4)
}
