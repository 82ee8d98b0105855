package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ferrestock/internal/models"
)

// defaultCategoriaID is assigned to products created implicitly through the
// stock API. Category 1 is "Herrajes", the first category seeded at
// bootstrap.
const defaultCategoriaID = 1

type StockRepository interface {
	List(ctx context.Context) ([]*models.StockLine, error)
	GetByID(ctx context.Context, id int) (*models.Stock, error)
	CreateWithProduct(ctx context.Context, producto string, cantidad int, ubicacion string) (int, error)
	Update(ctx context.Context, id, cantidad int, ubicacion string) error
	Delete(ctx context.Context, id int) error
}

type stockRepo struct {
	db DB
}

func NewStockRepo(db DB) StockRepository {
	return &stockRepo{db: db}
}

func (r *stockRepo) List(ctx context.Context) ([]*models.StockLine, error) {
	query := `
		SELECT s.id, p.nombre AS producto, c.nombre AS categoria, s.ubicacion, s.cantidad, s.cantidad_minima
		FROM stock s
		JOIN productos p ON s.producto_id = p.id
		LEFT JOIN categorias c ON p.categoria_id = c.id
		ORDER BY s.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*models.StockLine
	for rows.Next() {
		line := &models.StockLine{}
		if err := rows.Scan(&line.ID, &line.Producto, &line.Categoria, &line.Ubicacion, &line.Cantidad, &line.CantidadMinima); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *stockRepo) GetByID(ctx context.Context, id int) (*models.Stock, error) {
	stock := &models.Stock{}
	query := `
		SELECT id, producto_id, cantidad, ubicacion, cantidad_minima, fecha_actualizacion
		FROM stock
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&stock.ID, &stock.ProductoID, &stock.Cantidad, &stock.Ubicacion, &stock.CantidadMinima, &stock.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return stock, nil
}

// CreateWithProduct inserts a stock line for the named product, creating the
// product under the default category first when no product with that name
// exists yet. Both writes happen in one transaction so a failed stock insert
// never leaves a stray product behind.
func (r *stockRepo) CreateWithProduct(ctx context.Context, producto string, cantidad int, ubicacion string) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var productoID int
	err = tx.QueryRow(ctx, `SELECT id FROM productos WHERE nombre = $1`, producto).Scan(&productoID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx,
			`INSERT INTO productos (nombre, categoria_id) VALUES ($1, $2) RETURNING id`,
			producto, defaultCategoriaID,
		).Scan(&productoID)
	}
	if err != nil {
		return 0, err
	}

	var stockID int
	err = tx.QueryRow(ctx,
		`INSERT INTO stock (producto_id, cantidad, ubicacion) VALUES ($1, $2, $3) RETURNING id`,
		productoID, cantidad, ubicacion,
	).Scan(&stockID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return stockID, nil
}

// Update overwrites the row unconditionally: a nonexistent id affects zero
// rows and still succeeds.
func (r *stockRepo) Update(ctx context.Context, id, cantidad int, ubicacion string) error {
	query := `
		UPDATE stock
		SET cantidad = $1, ubicacion = $2, fecha_actualizacion = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, cantidad, ubicacion, id)
	return err
}

// Delete removes dependent inventario rows before the stock row itself, in
// one transaction. There is no cascade at the schema level.
func (r *stockRepo) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM inventario WHERE stock_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM stock WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
