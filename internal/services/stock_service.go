package services

import (
	"context"

	"go.uber.org/zap"

	"ferrestock/internal/models"
	"ferrestock/internal/repositories"
)

type StockService interface {
	List(ctx context.Context) ([]*models.StockLine, error)
	// Create inserts a stock line, creating the product on the fly when the
	// name is new, and records an "entrada" movement attributed to the
	// acting user. Returns the new stock id.
	Create(ctx context.Context, producto string, cantidad int, ubicacion string, usuarioID *int) (int, error)
	// Update overwrites cantidad and ubicacion unconditionally and records
	// an "ajuste" movement.
	Update(ctx context.Context, id, cantidad int, ubicacion string, usuarioID *int) error
	// Delete removes the stock line and its dependent inventario rows.
	Delete(ctx context.Context, id int) error
}

type stockService struct {
	stockRepo      repositories.StockRepository
	movimientoRepo repositories.MovimientoRepository
	logger         *zap.Logger
}

func NewStockService(stockRepo repositories.StockRepository, movimientoRepo repositories.MovimientoRepository, logger *zap.Logger) StockService {
	return &stockService{
		stockRepo:      stockRepo,
		movimientoRepo: movimientoRepo,
		logger:         logger,
	}
}

func (s *stockService) List(ctx context.Context) ([]*models.StockLine, error) {
	return s.stockRepo.List(ctx)
}

func (s *stockService) Create(ctx context.Context, producto string, cantidad int, ubicacion string, usuarioID *int) (int, error) {
	id, err := s.stockRepo.CreateWithProduct(ctx, producto, cantidad, ubicacion)
	if err != nil {
		return 0, err
	}

	s.recordMovimiento(ctx, id, models.MovimientoEntrada, cantidad, usuarioID)
	return id, nil
}

func (s *stockService) Update(ctx context.Context, id, cantidad int, ubicacion string, usuarioID *int) error {
	if err := s.stockRepo.Update(ctx, id, cantidad, ubicacion); err != nil {
		return err
	}

	s.recordMovimiento(ctx, id, models.MovimientoAjuste, cantidad, usuarioID)
	return nil
}

func (s *stockService) Delete(ctx context.Context, id int) error {
	return s.stockRepo.Delete(ctx, id)
}

// recordMovimiento appends to the audit trail. The trail is best-effort: a
// failed append never fails the stock write it describes.
func (s *stockService) recordMovimiento(ctx context.Context, stockID int, tipo string, cantidad int, usuarioID *int) {
	mov := &models.Movimiento{
		StockID:   stockID,
		Tipo:      tipo,
		Cantidad:  cantidad,
		UsuarioID: usuarioID,
	}
	if err := s.movimientoRepo.Create(ctx, mov); err != nil {
		s.logger.Warn("failed to record stock movement",
			zap.Int("stock_id", stockID),
			zap.String("tipo", tipo),
			zap.Error(err))
	}
}
