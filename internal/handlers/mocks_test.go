package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"ferrestock/internal/common"
	"ferrestock/internal/models"
	"ferrestock/internal/sessions"
)

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) List(ctx context.Context) ([]*models.StockLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockLine), args.Error(1)
}

func (m *MockStockService) Create(ctx context.Context, producto string, cantidad int, ubicacion string, usuarioID *int) (int, error) {
	args := m.Called(ctx, producto, cantidad, ubicacion, usuarioID)
	return args.Int(0), args.Error(1)
}

func (m *MockStockService) Update(ctx context.Context, id, cantidad int, ubicacion string, usuarioID *int) error {
	args := m.Called(ctx, id, cantidad, ubicacion, usuarioID)
	return args.Error(0)
}

func (m *MockStockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) List(ctx context.Context) ([]*models.InventarioLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventarioLine), args.Error(1)
}

func (m *MockInventoryService) Create(ctx context.Context, stockID int, ubicacion, observaciones string) (int, error) {
	args := m.Called(ctx, stockID, ubicacion, observaciones)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryService) Update(ctx context.Context, id int, ubicacion, observaciones string) error {
	args := m.Called(ctx, id, ubicacion, observaciones)
	return args.Error(0)
}

func (m *MockInventoryService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, usuario, clave, nombre, rol string) (int, error) {
	args := m.Called(ctx, usuario, clave, nombre, rol)
	return args.Int(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, usuario, clave string) (*models.User, error) {
	args := m.Called(ctx, usuario, clave)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// fakeStore is an in-memory sessions.Store for handler tests.
type fakeStore struct {
	data map[string]*sessions.Session
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]*sessions.Session)}
}

func (s *fakeStore) Create(ctx context.Context, sess *sessions.Session) (string, error) {
	token := "token-" + sess.Usuario
	s.data[token] = sess
	return token, nil
}

func (s *fakeStore) Get(ctx context.Context, token string) (*sessions.Session, error) {
	return s.data[token], nil
}

func (s *fakeStore) Delete(ctx context.Context, token string) error {
	delete(s.data, token)
	return nil
}

var (
	adminSession = &sessions.Session{UserID: 1, Usuario: "admin", Nombre: "Administrador", Rol: models.RolAdmin}
	userSession  = &sessions.Session{UserID: 2, Usuario: "juan", Nombre: "Juan Pérez", Rol: models.RolUsuario}
)

// newJSONContext builds an echo context for a JSON request, optionally bound
// to a session.
func newJSONContext(t *testing.T, e *echo.Echo, method, target, body string, sess *sessions.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sess != nil {
		req = req.WithContext(common.WithSession(req.Context(), sess))
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func pathContext(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}
