package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ferrestock/internal/models"
	"ferrestock/internal/services"
)

type StockHandlers struct {
	stockService services.StockService
}

func NewStockHandlers(stockService services.StockService) *StockHandlers {
	return &StockHandlers{stockService: stockService}
}

// ListStock is an open read: stock data is visible to everyone, including
// anonymous callers.
func (h *StockHandlers) ListStock(c echo.Context) error {
	lines, err := h.stockService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if lines == nil {
		lines = []*models.StockLine{}
	}
	return c.JSON(http.StatusOK, lines)
}

type createStockRequest struct {
	Producto  string  `json:"producto"`
	Cantidad  *int    `json:"cantidad"`
	Ubicacion *string `json:"ubicacion"`
}

func (r *createStockRequest) validate() error {
	if strings.TrimSpace(r.Producto) == "" {
		return errors.New("producto es requerido")
	}
	if r.Cantidad == nil {
		return errors.New("cantidad es requerida")
	}
	if r.Ubicacion == nil {
		return errors.New("ubicacion es requerida")
	}
	return nil
}

func (h *StockHandlers) CreateStock(c echo.Context) error {
	if !isAdmin(c) {
		return jsonUnauthorized(c)
	}

	var req createStockRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "cuerpo JSON inválido")
	}
	if err := req.validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	id, err := h.stockService.Create(c.Request().Context(), req.Producto, *req.Cantidad, *req.Ubicacion, currentUserID(c))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return jsonCreated(c, id)
}

type updateStockRequest struct {
	Cantidad  *int    `json:"cantidad"`
	Ubicacion *string `json:"ubicacion"`
}

func (r *updateStockRequest) validate() error {
	if r.Cantidad == nil {
		return errors.New("cantidad es requerida")
	}
	if r.Ubicacion == nil {
		return errors.New("ubicacion es requerida")
	}
	return nil
}

// UpdateStock overwrites the row unconditionally: updating a nonexistent id
// succeeds with zero rows affected.
func (h *StockHandlers) UpdateStock(c echo.Context) error {
	if !isAdmin(c) {
		return jsonUnauthorized(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "id inválido")
	}

	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "cuerpo JSON inválido")
	}
	if err := req.validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.stockService.Update(c.Request().Context(), id, *req.Cantidad, *req.Ubicacion, currentUserID(c)); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return jsonSuccess(c)
}

func (h *StockHandlers) DeleteStock(c echo.Context) error {
	if !isAdmin(c) {
		return jsonUnauthorized(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "id inválido")
	}

	if err := h.stockService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return jsonSuccess(c)
}
