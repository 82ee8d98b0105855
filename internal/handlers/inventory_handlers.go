package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ferrestock/internal/models"
	"ferrestock/internal/services"
)

type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

// ListInventario is an open read, like the stock listing.
func (h *InventoryHandlers) ListInventario(c echo.Context) error {
	lines, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if lines == nil {
		lines = []*models.InventarioLine{}
	}
	return c.JSON(http.StatusOK, lines)
}

type createInventarioRequest struct {
	StockID       *int    `json:"stock_id"`
	Ubicacion     *string `json:"ubicacion"`
	Observaciones string  `json:"observaciones"`
}

func (r *createInventarioRequest) validate() error {
	if r.StockID == nil {
		return errors.New("stock_id es requerido")
	}
	if r.Ubicacion == nil {
		return errors.New("ubicacion es requerida")
	}
	return nil
}

func (h *InventoryHandlers) CreateInventario(c echo.Context) error {
	if !isAdmin(c) {
		return jsonUnauthorized(c)
	}

	var req createInventarioRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "cuerpo JSON inválido")
	}
	if err := req.validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	id, err := h.inventoryService.Create(c.Request().Context(), *req.StockID, *req.Ubicacion, req.Observaciones)
	if errors.Is(err, services.ErrStockNotFound) {
		return jsonError(c, http.StatusNotFound, "Stock no encontrado")
	}
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return jsonCreated(c, id)
}

type updateInventarioRequest struct {
	Ubicacion     *string `json:"ubicacion"`
	Observaciones string  `json:"observaciones"`
}

func (r *updateInventarioRequest) validate() error {
	if r.Ubicacion == nil {
		return errors.New("ubicacion es requerida")
	}
	return nil
}

func (h *InventoryHandlers) UpdateInventario(c echo.Context) error {
	if !isAdmin(c) {
		return jsonUnauthorized(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "id inválido")
	}

	var req updateInventarioRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "cuerpo JSON inválido")
	}
	if err := req.validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.inventoryService.Update(c.Request().Context(), id, *req.Ubicacion, req.Observaciones); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return jsonSuccess(c)
}

func (h *InventoryHandlers) DeleteInventario(c echo.Context) error {
	if !isAdmin(c) {
		return jsonUnauthorized(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "id inválido")
	}

	if err := h.inventoryService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return jsonSuccess(c)
}
