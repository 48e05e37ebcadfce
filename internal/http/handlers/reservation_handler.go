package handlers

import (
	"errors"

	"closetluna/internal/domain"
	applog "closetluna/internal/log"
	"closetluna/internal/services"
	"closetluna/internal/session"
	"closetluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ReservationHandler struct {
	Resv     *services.ReservationService
	Sessions session.Store
}

// Create handles the reservation form on the item page. A successful
// reservation also saves the identity so future visits are prefilled.
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	itemID, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "itemId"})
		return c.Status(fiber.StatusBadRequest).SendString("Prenda inválida")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Ingresa tu nombre")
	}
	phone, ok := validate.Phone(c.FormValue("phone"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Ingresa tu teléfono")
	}
	method, ok := validate.Payment(c.FormValue("paymentMethod"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "paymentMethod"})
		return c.Status(fiber.StatusBadRequest).SendString("Método de pago inválido")
	}

	res, err := h.Resv.Create(itemID, name, phone, domain.PaymentMethod(method))
	if err != nil {
		return h.renderCreateError(c, itemID, err)
	}

	_ = h.Sessions.Set(c, name, phone)
	applog.Audit(c, "reservation.create", map[string]any{"reservation_id": res.ID, "item_id": itemID})
	return c.Redirect("/reservations")
}

func (h *ReservationHandler) renderCreateError(c *fiber.Ctx, itemID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Prenda no encontrada."})
	case errors.Is(err, domain.ErrItemUnavailable):
		applog.Info(c, "reservation.conflict", map[string]any{"item_id": itemID})
		return c.Status(fiber.StatusConflict).Render("notfound", fiber.Map{"Message": "Lo sentimos, esta prenda ya no está disponible."})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).SendString("Datos de reserva inválidos")
	default:
		applog.Error(c, "reservation.create.fail", err, map[string]any{"item_id": itemID})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Ocurrió un error inesperado. Por favor intenta de nuevo."})
	}
}

// List shows the visitor's active reservations, most recent first.
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	sess := h.Sessions.Get(c)
	if sess == nil {
		return render(c, "reservations", fiber.Map{"Reservations": []any{}, "Identified": false})
	}
	rows, err := h.Resv.ListByPhone(sess.Phone)
	if err != nil {
		applog.Error(c, "reservations.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudieron cargar las reservas."})
	}
	return render(c, "reservations", fiber.Map{"Reservations": rows, "Identified": true})
}

// Cancel releases one of the visitor's own active reservations.
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	sess := h.Sessions.Get(c)
	if sess == nil {
		return c.Redirect("/reservations")
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Reserva inválida")
	}
	if err := h.Resv.Cancel(id, sess.Phone); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Reserva no encontrada"})
		}
		applog.Error(c, "reservation.cancel.fail", err, map[string]any{"reservation_id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Ocurrió un error inesperado. Por favor intenta de nuevo."})
	}
	applog.Audit(c, "reservation.cancel", map[string]any{"reservation_id": id})
	return c.Redirect("/reservations")
}

type createReservationBody struct {
	ItemID        string `json:"itemId"`
	UserName      string `json:"userName"`
	UserPhone     string `json:"userPhone"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreateAPI is the JSON variant used by the reservation dialog.
func (h *ReservationHandler) CreateAPI(c *fiber.Ctx) error {
	var body createReservationBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	itemID, ok := validate.ID(body.ItemID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Prenda inválida"})
	}
	method, ok := validate.Payment(body.PaymentMethod)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Método de pago inválido"})
	}

	res, err := h.Resv.Create(itemID, body.UserName, body.UserPhone, domain.PaymentMethod(method))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Prenda no encontrada."})
		case errors.Is(err, domain.ErrItemUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Lo sentimos, esta prenda ya no está disponible."})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nombre y teléfono son requeridos"})
		default:
			applog.Error(c, "reservation.create.fail", err, map[string]any{"item_id": itemID})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ocurrió un error inesperado. Por favor intenta de nuevo."})
		}
	}

	_ = h.Sessions.Set(c, body.UserName, body.UserPhone)
	applog.Audit(c, "reservation.create", map[string]any{"reservation_id": res.ID, "item_id": itemID})
	return c.JSON(fiber.Map{"success": true, "reservation": res})
}

// ListAPI returns the current session's active reservations as JSON.
func (h *ReservationHandler) ListAPI(c *fiber.Ctx) error {
	sess := h.Sessions.Get(c)
	if sess == nil {
		return c.JSON(fiber.Map{"reservations": []any{}})
	}
	rows, err := h.Resv.ListByPhone(sess.Phone)
	if err != nil {
		applog.Error(c, "reservations.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron cargar las reservas."})
	}
	return c.JSON(fiber.Map{"reservations": rows})
}
