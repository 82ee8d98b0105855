package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ferrestock/internal/models"
	"ferrestock/internal/services"
)

func TestListInventario_OpenToAnonymous(t *testing.T) {
	e := echo.New()
	svc := new(MockInventoryService)
	h := NewInventoryHandlers(svc)

	svc.On("List", mock.Anything).Return([]*models.InventarioLine{
		{ID: 1, Producto: "Martillo", Cantidad: 5},
	}, nil)

	c, rec := newJSONContext(t, e, http.MethodGet, "/api/inventario", "", nil)
	assert.NoError(t, h.ListInventario(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"producto":"Martillo"`)
}

func TestCreateInventario_NonAdminForbidden(t *testing.T) {
	e := echo.New()
	svc := new(MockInventoryService)
	h := NewInventoryHandlers(svc)

	c, rec := newJSONContext(t, e, http.MethodPost, "/api/inventario", `{"stock_id":5,"ubicacion":"A1"}`, userSession)
	assert.NoError(t, h.CreateInventario(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateInventario_MissingStockIs404(t *testing.T) {
	e := echo.New()
	svc := new(MockInventoryService)
	h := NewInventoryHandlers(svc)

	svc.On("Create", mock.Anything, 99, "A1", "").Return(0, services.ErrStockNotFound)

	c, rec := newJSONContext(t, e, http.MethodPost, "/api/inventario", `{"stock_id":99,"ubicacion":"A1"}`, adminSession)
	assert.NoError(t, h.CreateInventario(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stock no encontrado")
}

func TestCreateInventario_AdminSuccess(t *testing.T) {
	e := echo.New()
	svc := new(MockInventoryService)
	h := NewInventoryHandlers(svc)

	svc.On("Create", mock.Anything, 5, "A1", "revisión mensual").Return(3, nil)

	c, rec := newJSONContext(t, e, http.MethodPost, "/api/inventario", `{"stock_id":5,"ubicacion":"A1","observaciones":"revisión mensual"}`, adminSession)
	assert.NoError(t, h.CreateInventario(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":3`)
}

func TestCreateInventario_MissingStockID(t *testing.T) {
	e := echo.New()
	svc := new(MockInventoryService)
	h := NewInventoryHandlers(svc)

	c, rec := newJSONContext(t, e, http.MethodPost, "/api/inventario", `{"ubicacion":"A1"}`, adminSession)
	assert.NoError(t, h.CreateInventario(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "stock_id")
}

func TestUpdateInventario_AdminSuccess(t *testing.T) {
	e := echo.New()
	svc := new(MockInventoryService)
	h := NewInventoryHandlers(svc)

	svc.On("Update", mock.Anything, 3, "B2", "recuento").Return(nil)

	c, rec := newJSONContext(t, e, http.MethodPut, "/api/inventario/3", `{"ubicacion":"B2","observaciones":"recuento"}`, adminSession)
	pathContext(c, "id", "3")
	assert.NoError(t, h.UpdateInventario(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteInventario_AdminSuccess(t *testing.T) {
	e := echo.New()
	svc := new(MockInventoryService)
	h := NewInventoryHandlers(svc)

	svc.On("Delete", mock.Anything, 3).Return(nil)

	c, rec := newJSONContext(t, e, http.MethodDelete, "/api/inventario/3", "", adminSession)
	pathContext(c, "id", "3")
	assert.NoError(t, h.DeleteInventario(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
