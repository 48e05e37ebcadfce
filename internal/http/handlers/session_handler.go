package handlers

import (
	applog "closetluna/internal/log"
	"closetluna/internal/session"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	Sessions session.Store
}

// Get returns the identified session, or null when anonymous.
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"session": h.Sessions.Get(c)})
}

type sessionBody struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Set saves the identity for 30 days. Missing or non-string fields are a 400.
func (h *SessionHandler) Set(c *fiber.Ctx) error {
	var body sessionBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nombre y teléfono son requeridos"})
	}
	if err := h.Sessions.Set(c, body.Name, body.Phone); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nombre y teléfono son requeridos"})
	}
	applog.Audit(c, "session.set", nil)
	return c.JSON(fiber.Map{"success": true})
}

// Clear removes the identity immediately.
func (h *SessionHandler) Clear(c *fiber.Ctx) error {
	h.Sessions.Clear(c)
	applog.Audit(c, "session.clear", nil)
	return c.JSON(fiber.Map{"success": true})
}
