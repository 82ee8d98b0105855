package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ferrestock/internal/models"
	"ferrestock/internal/repositories"
)

type InventoryService interface {
	List(ctx context.Context) ([]*models.InventarioLine, error)
	// Create snapshots the current stock quantity into a new inventory row.
	// The referenced stock line must exist; the snapshot is never synced
	// with the stock row afterward.
	Create(ctx context.Context, stockID int, ubicacion, observaciones string) (int, error)
	Update(ctx context.Context, id int, ubicacion, observaciones string) error
	Delete(ctx context.Context, id int) error
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	stockRepo     repositories.StockRepository
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, stockRepo repositories.StockRepository) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		stockRepo:     stockRepo,
	}
}

func (s *inventoryService) List(ctx context.Context) ([]*models.InventarioLine, error) {
	return s.inventoryRepo.List(ctx)
}

func (s *inventoryService) Create(ctx context.Context, stockID int, ubicacion, observaciones string) (int, error) {
	stock, err := s.stockRepo.GetByID(ctx, stockID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrStockNotFound
	}
	if err != nil {
		return 0, err
	}

	inv := &models.Inventario{
		StockID:       stockID,
		Ubicacion:     &ubicacion,
		Cantidad:      stock.Cantidad,
		Observaciones: &observaciones,
	}
	return s.inventoryRepo.Create(ctx, inv)
}

func (s *inventoryService) Update(ctx context.Context, id int, ubicacion, observaciones string) error {
	return s.inventoryRepo.Update(ctx, id, ubicacion, observaciones)
}

func (s *inventoryService) Delete(ctx context.Context, id int) error {
	return s.inventoryRepo.Delete(ctx, id)
}
