package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ferrestock/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetActiveByUsuario(ctx context.Context, usuario string) (*models.User, error) {
	args := m.Called(ctx, usuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) List(ctx context.Context) ([]*models.StockLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockLine), args.Error(1)
}

func (m *MockStockRepository) GetByID(ctx context.Context, id int) (*models.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockRepository) CreateWithProduct(ctx context.Context, producto string, cantidad int, ubicacion string) (int, error) {
	args := m.Called(ctx, producto, cantidad, ubicacion)
	return args.Int(0), args.Error(1)
}

func (m *MockStockRepository) Update(ctx context.Context, id, cantidad int, ubicacion string) error {
	args := m.Called(ctx, id, cantidad, ubicacion)
	return args.Error(0)
}

func (m *MockStockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]*models.InventarioLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventarioLine), args.Error(1)
}

func (m *MockInventoryRepository) Create(ctx context.Context, inv *models.Inventario) (int, error) {
	args := m.Called(ctx, inv)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) Update(ctx context.Context, id int, ubicacion, observaciones string) error {
	args := m.Called(ctx, id, ubicacion, observaciones)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMovimientoRepository struct {
	mock.Mock
}

func (m *MockMovimientoRepository) Create(ctx context.Context, mov *models.Movimiento) error {
	args := m.Called(ctx, mov)
	return args.Error(0)
}
