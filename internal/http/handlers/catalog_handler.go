package handlers

import (
	applog "closetluna/internal/log"
	"closetluna/internal/services"
	"closetluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// Browse renders the catalog with search/category/size filters applied.
// Filter option lists always come from the full catalog, not the filtered
// subset.
func (h *CatalogHandler) Browse(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	category := c.Query("category", services.FilterAll)
	size := c.Query("size", services.FilterAll)

	items, err := h.Catalog.ListItems()
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudo cargar el catálogo. Intenta de nuevo."})
	}

	filtered := services.Filter(items, q, category, size)
	categories, sizes := services.FilterOptions(items)

	return render(c, "catalog", fiber.Map{
		"Q": q, "Category": category, "Size": size,
		"Categories": categories, "Sizes": sizes,
		"Items": filtered, "Count": len(filtered),
	})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "item"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Esta prenda ya no está disponible"})
	}
	it, err := h.Catalog.GetItem(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Esta prenda ya no está disponible"})
	}
	return render(c, "item", fiber.Map{"Item": it})
}
