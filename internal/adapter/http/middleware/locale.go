package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	// AcceptLanguageHeader is read to negotiate the locale.
	AcceptLanguageHeader = "Accept-Language"

	// ContentLanguageHeader reports the locale used for message text.
	ContentLanguageHeader = "Content-Language"

	localeKey = "locale"
)

// LocaleMatcher resolves an Accept-Language value to a supported locale.
type LocaleMatcher interface {
	Match(acceptLanguage string) string
}

// Locale negotiates the response language from Accept-Language and
// advertises it in Content-Language.
func Locale(matcher LocaleMatcher) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetLocale(c, matcher.Match(c.Request().Header.Get(AcceptLanguageHeader)))
			return next(c)
		}
	}
}

// SetLocale overrides the negotiated locale, e.g. from an explicit request field.
func SetLocale(c echo.Context, locale string) {
	c.Set(localeKey, locale)
	c.Response().Header().Set(ContentLanguageHeader, locale)
}

// GetLocale returns the negotiated locale, or "" outside the middleware.
func GetLocale(c echo.Context) string {
	locale, _ := c.Get(localeKey).(string)
	return locale
}
