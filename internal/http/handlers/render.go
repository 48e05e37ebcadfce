package handlers

import (
	"closetluna/internal/session"

	"github.com/gofiber/fiber/v2"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject the identified session if present
	if s := c.Locals("session"); s != nil {
		data["Session"] = s
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// AttachSession exposes the cookie identity to templates and handlers.
func AttachSession(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s := store.Get(c); s != nil {
			c.Locals("session", s)
		}
		return c.Next()
	}
}
