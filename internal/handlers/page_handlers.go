package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ferrestock/internal/repositories"
	"ferrestock/internal/services"
)

type PageHandlers struct {
	productRepo      repositories.ProductRepository
	stockService     services.StockService
	inventoryService services.InventoryService
}

func NewPageHandlers(productRepo repositories.ProductRepository, stockService services.StockService, inventoryService services.InventoryService) *PageHandlers {
	return &PageHandlers{
		productRepo:      productRepo,
		stockService:     stockService,
		inventoryService: inventoryService,
	}
}

// Base is the landing page after login. Anonymous visitors see it too, with
// the "visitante" role.
func (h *PageHandlers) Base(c echo.Context) error {
	rol := "visitante"
	nombre := ""
	if sess := currentSession(c); sess != nil {
		rol = sess.Rol
		nombre = sess.Nombre
	}
	return c.Render(http.StatusOK, "base.html", echo.Map{"Rol": rol, "Nombre": nombre})
}

func (h *PageHandlers) Contacto(c echo.Context) error {
	return c.Render(http.StatusOK, "contacto.html", nil)
}

// Productos lists active products. Open to everyone.
func (h *PageHandlers) Productos(c echo.Context) error {
	products, err := h.productRepo.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "productos.html", echo.Map{"Productos": products})
}

// Stock is admin-only; anyone else is sent back to the landing page.
func (h *PageHandlers) Stock(c echo.Context) error {
	if !isAdmin(c) {
		return c.Redirect(http.StatusFound, "/base")
	}

	lines, err := h.stockService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "stock.html", echo.Map{"Stock": lines})
}

// Inventario is admin-only; anyone else is sent back to the landing page.
func (h *PageHandlers) Inventario(c echo.Context) error {
	if !isAdmin(c) {
		return c.Redirect(http.StatusFound, "/base")
	}

	lines, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "inventario.html", echo.Map{"Inventario": lines})
}
