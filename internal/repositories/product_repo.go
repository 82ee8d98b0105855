package repositories

import (
	"context"

	"ferrestock/internal/models"
)

type ProductRepository interface {
	ListActive(ctx context.Context) ([]*models.ProductListing, error)
}

type productRepo struct {
	db DB
}

func NewProductRepo(db DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) ListActive(ctx context.Context) ([]*models.ProductListing, error) {
	query := `
		SELECT p.id, p.nombre, p.descripcion, p.precio, c.nombre AS categoria
		FROM productos p
		LEFT JOIN categorias c ON p.categoria_id = c.id
		WHERE p.estado = 'activo'
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.ProductListing
	for rows.Next() {
		p := &models.ProductListing{}
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Categoria); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
