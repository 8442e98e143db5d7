package handlers

import (
	"carpetstore/internal/i18n"
	"carpetstore/internal/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cultureCookieLifetime = 365 * 24 * time.Hour

// CultureHandler lets a client pick the locale used for its messages.
type CultureHandler struct {
	catalog *i18n.Catalog
}

// NewCultureHandler creates a new CultureHandler.
func NewCultureHandler(catalog *i18n.Catalog) *CultureHandler {
	return &CultureHandler{catalog: catalog}
}

// RegisterRoutes registers the culture routes with the Fiber router.
func (h *CultureHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/culture/set", h.HandleSetCulture)
}

// HandleSetCulture stores the requested culture in a cookie and redirects back
// to redirectUri. Only local redirect targets are followed.
func (h *CultureHandler) HandleSetCulture(c *fiber.Ctx) error {
	culture := strings.ToLower(c.Query("culture"))
	if !h.catalog.Supports(culture) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unsupported culture",
			"culture": culture,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CultureCookie,
		Value:    culture,
		Path:     "/",
		Expires:  time.Now().Add(cultureCookieLifetime),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(localRedirect(c.Query("redirectUri")), fiber.StatusFound)
}

func localRedirect(uri string) string {
	if !strings.HasPrefix(uri, "/") || strings.HasPrefix(uri, "//") || strings.HasPrefix(uri, "/\\") {
		return "/"
	}
	return uri
}
