package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ferrestock/internal/models"
	"ferrestock/internal/services"
)

type UserHandlers struct {
	userService services.UserService
}

func NewUserHandlers(userService services.UserService) *UserHandlers {
	return &UserHandlers{userService: userService}
}

// ListUsers is admin-gated, unlike the other API reads.
func (h *UserHandlers) ListUsers(c echo.Context) error {
	if !isAdmin(c) {
		return jsonUnauthorized(c)
	}

	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*models.User{}
	}
	return c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
	Nombre  string `json:"nombre"`
	Rol     string `json:"rol"`
}

func (r *createUserRequest) validate() error {
	if strings.TrimSpace(r.Usuario) == "" {
		return errors.New("usuario es requerido")
	}
	if r.Clave == "" {
		return errors.New("clave es requerida")
	}
	if strings.TrimSpace(r.Nombre) == "" {
		return errors.New("nombre es requerido")
	}
	return nil
}

// CreateUser carries no role check: self-registration is open, matching the
// rest of the write-gated surface's one deliberate exception.
func (h *UserHandlers) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "cuerpo JSON inválido")
	}
	if err := req.validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	id, err := h.userService.Create(c.Request().Context(), req.Usuario, req.Clave, req.Nombre, req.Rol)
	if errors.Is(err, services.ErrUserExists) {
		return jsonError(c, http.StatusBadRequest, "Usuario ya existe")
	}
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return jsonCreated(c, id)
}
