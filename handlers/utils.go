package handlers

import "github.com/gofiber/fiber/v2"

// isHTMX reports whether the request came from an htmx attribute rather than
// a plain link or form.
func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
