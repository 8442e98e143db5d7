package middleware

import (
	"carpetstore/internal/i18n"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CultureCookie holds the locale chosen through the culture endpoint.
const CultureCookie = "culture"

// Locale resolves the request locale and stores it on the user context. The
// culture cookie wins over Accept-Language; unsupported locales fall back to
// defaultLocale.
func Locale(catalog *i18n.Catalog, defaultLocale string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := defaultLocale
		if cookie := c.Cookies(CultureCookie); catalog.Supports(cookie) {
			locale = cookie
		} else if accepted := primaryLanguage(c.Get(fiber.HeaderAcceptLanguage)); catalog.Supports(accepted) {
			locale = accepted
		}

		c.SetUserContext(i18n.WithLocale(c.UserContext(), locale))
		c.Set(fiber.HeaderContentLanguage, locale)
		return c.Next()
	}
}

// primaryLanguage returns the base language of the first Accept-Language entry,
// "ar-SA,ar;q=0.9" yields "ar".
func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first, _, _ = strings.Cut(strings.TrimSpace(first), "-")
	return strings.ToLower(first)
}
