package repositories

import (
	"context"

	"ferrestock/internal/models"
)

// MovimientoRepository only appends: movements are an audit trail no exposed
// operation reads back.
type MovimientoRepository interface {
	Create(ctx context.Context, mov *models.Movimiento) error
}

type movimientoRepo struct {
	db DB
}

func NewMovimientoRepo(db DB) MovimientoRepository {
	return &movimientoRepo{db: db}
}

func (r *movimientoRepo) Create(ctx context.Context, mov *models.Movimiento) error {
	query := `
		INSERT INTO movimientos (stock_id, tipo, cantidad, usuario_id, descripcion)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, mov.StockID, mov.Tipo, mov.Cantidad, mov.UsuarioID, mov.Descripcion)
	return err
}
