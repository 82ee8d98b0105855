package jobs

import (
	"context"

	"go.uber.org/zap"

	"ferrestock/internal/repositories"
)

// StockAlertService sweeps the stock table for lines at or under their own
// minimum quantity. It only reports; nothing is written.
type StockAlertService struct {
	stockRepo repositories.StockRepository
	logger    *zap.Logger
}

type LowStockAlert struct {
	StockID        int
	Producto       string
	Ubicacion      string
	Cantidad       int
	CantidadMinima int
}

func NewStockAlertService(stockRepo repositories.StockRepository, logger *zap.Logger) *StockAlertService {
	return &StockAlertService{stockRepo: stockRepo, logger: logger}
}

func (s *StockAlertService) CheckLowStock(ctx context.Context) ([]LowStockAlert, error) {
	lines, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []LowStockAlert
	for _, line := range lines {
		if line.Cantidad <= line.CantidadMinima {
			alerts = append(alerts, LowStockAlert{
				StockID:        line.ID,
				Producto:       line.Producto,
				Ubicacion:      stringValue(line.Ubicacion),
				Cantidad:       line.Cantidad,
				CantidadMinima: line.CantidadMinima,
			})
		}
	}
	return alerts, nil
}

func (s *StockAlertService) LogAlerts(alerts []LowStockAlert) {
	for _, alert := range alerts {
		s.logger.Warn("stock bajo",
			zap.Int("stock_id", alert.StockID),
			zap.String("producto", alert.Producto),
			zap.String("ubicacion", alert.Ubicacion),
			zap.Int("cantidad", alert.Cantidad),
			zap.Int("cantidad_minima", alert.CantidadMinima))
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
