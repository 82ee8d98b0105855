package repositories

import (
	"context"

	"ferrestock/internal/models"
)

type InventoryRepository interface {
	List(ctx context.Context) ([]*models.InventarioLine, error)
	Create(ctx context.Context, inv *models.Inventario) (int, error)
	Update(ctx context.Context, id int, ubicacion, observaciones string) error
	Delete(ctx context.Context, id int) error
}

type inventoryRepo struct {
	db DB
}

func NewInventoryRepo(db DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) List(ctx context.Context) ([]*models.InventarioLine, error) {
	query := `
		SELECT i.id, p.nombre AS producto, c.nombre AS categoria, i.ubicacion, s.cantidad
		FROM inventario i
		JOIN stock s ON i.stock_id = s.id
		JOIN productos p ON s.producto_id = p.id
		LEFT JOIN categorias c ON p.categoria_id = c.id
		ORDER BY i.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*models.InventarioLine
	for rows.Next() {
		line := &models.InventarioLine{}
		if err := rows.Scan(&line.ID, &line.Producto, &line.Categoria, &line.Ubicacion, &line.Cantidad); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *inventoryRepo) Create(ctx context.Context, inv *models.Inventario) (int, error) {
	var id int
	query := `
		INSERT INTO inventario (stock_id, ubicacion, cantidad, observaciones)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, inv.StockID, inv.Ubicacion, inv.Cantidad, inv.Observaciones).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the row unconditionally; updating a nonexistent id
// affects zero rows and still succeeds.
func (r *inventoryRepo) Update(ctx context.Context, id int, ubicacion, observaciones string) error {
	query := `
		UPDATE inventario
		SET ubicacion = $1, observaciones = $2, ultima_revision = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, ubicacion, observaciones, id)
	return err
}

func (r *inventoryRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventario WHERE id = $1`, id)
	return err
}
