package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ferrestock/internal/middleware"
	"ferrestock/internal/models"
	"ferrestock/internal/render"
	"ferrestock/internal/services"
)

func newLoginContext(t *testing.T, e *echo.Echo, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newAuthTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer
	return e
}

func TestLogin_EmptyFieldsRerendersForm(t *testing.T) {
	e := newAuthTestEcho(t)
	authSvc := new(MockAuthService)
	store := newFakeStore()
	h := NewAuthHandlers(authSvc, store, time.Hour, zap.NewNop())

	c, rec := newLoginContext(t, e, url.Values{"usuario": {"   "}, "clave": {""}})
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Complete todos los campos")
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
	assert.Empty(t, store.data)
	authSvc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_InvalidCredentialsGenericMessage(t *testing.T) {
	e := newAuthTestEcho(t)
	authSvc := new(MockAuthService)
	h := NewAuthHandlers(authSvc, newFakeStore(), time.Hour, zap.NewNop())

	authSvc.On("Authenticate", mock.Anything, "admin", "mala").Return(nil, services.ErrInvalidCredentials)

	c, rec := newLoginContext(t, e, url.Values{"usuario": {"admin"}, "clave": {"mala"}})
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario o contraseña incorrectos")
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	e := newAuthTestEcho(t)
	authSvc := new(MockAuthService)
	store := newFakeStore()
	h := NewAuthHandlers(authSvc, store, time.Hour, zap.NewNop())

	authSvc.On("Authenticate", mock.Anything, "admin", "admin123").Return(&models.User{
		ID: 1, Usuario: "admin", Nombre: "Administrador", Rol: models.RolAdmin,
	}, nil)

	// surrounding whitespace is trimmed before validation
	c, rec := newLoginContext(t, e, url.Values{"usuario": {" admin "}, "clave": {" admin123 "}})
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/base", rec.Header().Get(echo.HeaderLocation))

	cookie := rec.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, middleware.CookieName+"=")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Len(t, store.data, 1)
	assert.Equal(t, models.RolAdmin, store.data["token-admin"].Rol)
}

func TestLogout_ClearsSessionAndCookie(t *testing.T) {
	e := newAuthTestEcho(t)
	store := newFakeStore()
	h := NewAuthHandlers(new(MockAuthService), store, time.Hour, zap.NewNop())

	token, err := store.Create(nil, adminSession)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, store.data)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}
