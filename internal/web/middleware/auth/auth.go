package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portfolio-admin/portfolio-admin/internal/web/session"
)

const (
	// CurrentUserKey is the fiber.Locals key holding the session of a logged in admin.
	CurrentUserKey = "CurrentUser"

	// LoginPath is where anonymous browser requests are sent.
	LoginPath = "/login"
)

// Middleware loads the session of the request into fiber.Locals. It never rejects a request.
func Middleware(c *fiber.Ctx) error {
	data := new(session.Data)

	if err := data.Read(c.Cookies(session.CookieName)); err == nil && data.Valid() {
		c.Locals(CurrentUserKey, *data)
	}

	return c.Next()
}

// CurrentUser returns the session stored by Middleware.
func CurrentUser(c *fiber.Ctx) (session.Data, bool) {
	data, ok := c.Locals(CurrentUserKey).(session.Data)
	return data, ok && data.Valid()
}

// RequireAdmin redirects anonymous browser requests to the login page.
func RequireAdmin(c *fiber.Ctx) error {
	if _, ok := CurrentUser(c); !ok {
		return c.Redirect(LoginPath)
	}

	return c.Next()
}

// RequireAdminAPI rejects anonymous API requests with 401.
func RequireAdminAPI(c *fiber.Ctx) error {
	if _, ok := CurrentUser(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	return c.Next()
}
