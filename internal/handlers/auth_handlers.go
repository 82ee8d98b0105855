package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ferrestock/internal/middleware"
	"ferrestock/internal/services"
	"ferrestock/internal/sessions"
)

type AuthHandlers struct {
	authService services.AuthService
	store       sessions.Store
	sessionTTL  time.Duration
	logger      *zap.Logger
}

func NewAuthHandlers(authService services.AuthService, store sessions.Store, sessionTTL time.Duration, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		store:       store,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// LoginForm serves the login page.
func (h *AuthHandlers) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

// Login authenticates the submitted form. Both failure modes re-render the
// form: empty fields with a validation message, bad credentials with one
// generic message that does not distinguish unknown user from wrong
// password.
func (h *AuthHandlers) Login(c echo.Context) error {
	usuario := strings.TrimSpace(c.FormValue("usuario"))
	clave := strings.TrimSpace(c.FormValue("clave"))

	if usuario == "" || clave == "" {
		return c.Render(http.StatusOK, "login.html", echo.Map{"Error": "Complete todos los campos"})
	}

	ctx := c.Request().Context()

	user, err := h.authService.Authenticate(ctx, usuario, clave)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Render(http.StatusOK, "login.html", echo.Map{"Error": "Usuario o contraseña incorrectos"})
	}
	if err != nil {
		return err
	}

	token, err := h.store.Create(ctx, &sessions.Session{
		UserID:  user.ID,
		Usuario: user.Usuario,
		Nombre:  user.Nombre,
		Rol:     user.Rol,
	})
	if err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/base")
}

// Logout clears the session unconditionally and sends the user back to the
// login page.
func (h *AuthHandlers) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.store.Delete(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Warn("failed to delete session", zap.Error(err))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, "/")
}
