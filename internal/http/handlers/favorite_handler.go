package handlers

import (
	applog "closetluna/internal/log"
	"closetluna/internal/services"
	"closetluna/internal/session"
	"closetluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Favs     *services.FavoriteService
	Sessions session.Store
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	sess := h.Sessions.Get(c)
	if sess == nil {
		return render(c, "favoritos", fiber.Map{"Items": []any{}, "Identified": false})
	}
	items, err := h.Favs.List(sess.Phone)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudieron cargar los favoritos"})
	}
	return render(c, "favoritos", fiber.Map{"Items": items, "Identified": true})
}

func (h *FavoriteHandler) Save(c *fiber.Ctx) error {
	sess := h.Sessions.Get(c)
	if sess == nil {
		return c.Status(fiber.StatusBadRequest).SendString("Guarda una reserva primero para identificarte")
	}
	id, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Prenda inválida")
	}
	if err := h.Favs.Save(sess.Phone, id); err != nil {
		applog.Error(c, "favorites.save.fail", err, map[string]any{"item_id": id})
		return c.Status(fiber.StatusInternalServerError).SendString("No se pudo guardar")
	}
	applog.Audit(c, "favorites.save", map[string]any{"item_id": id})
	back := c.Get("Referer")
	if back == "" {
		back = "/favoritos"
	}
	return c.Redirect(back)
}

func (h *FavoriteHandler) Unsave(c *fiber.Ctx) error {
	sess := h.Sessions.Get(c)
	if sess == nil {
		return c.Redirect("/favoritos")
	}
	id, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Prenda inválida")
	}
	if err := h.Favs.Unsave(sess.Phone, id); err != nil {
		applog.Error(c, "favorites.unsave.fail", err, map[string]any{"item_id": id})
		return c.Status(fiber.StatusInternalServerError).SendString("No se pudo quitar")
	}
	applog.Audit(c, "favorites.unsave", map[string]any{"item_id": id})
	return c.Redirect("/favoritos")
}
