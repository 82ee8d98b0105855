package models

import "time"

type Stock struct {
	ID             int       `json:"id" db:"id"`
	ProductoID     int       `json:"producto_id" db:"producto_id"`
	Cantidad       int       `json:"cantidad" db:"cantidad"`
	Ubicacion      *string   `json:"ubicacion" db:"ubicacion"`
	CantidadMinima int       `json:"cantidad_minima" db:"cantidad_minima"`
	UpdatedAt      time.Time `json:"fecha_actualizacion" db:"fecha_actualizacion"`
}

// StockLine is one stock row joined with its product and category names, as
// served by GET /api/stock and the stock page. CantidadMinima is only shown
// on the page, never in the API payload.
type StockLine struct {
	ID             int     `json:"id"`
	Producto       string  `json:"producto"`
	Categoria      *string `json:"categoria"`
	Ubicacion      *string `json:"ubicacion"`
	Cantidad       int     `json:"cantidad"`
	CantidadMinima int     `json:"-"`
}
