package models

import "time"

// Inventario is a warehouse review line for a stock row. Cantidad is a
// snapshot copied from the stock row at creation time and is never synced
// with it afterward.
type Inventario struct {
	ID             int       `json:"id" db:"id"`
	StockID        int       `json:"stock_id" db:"stock_id"`
	Ubicacion      *string   `json:"ubicacion" db:"ubicacion"`
	Cantidad       int       `json:"cantidad" db:"cantidad"`
	Observaciones  *string   `json:"observaciones" db:"observaciones"`
	UltimaRevision time.Time `json:"ultima_revision" db:"ultima_revision"`
}

// InventarioLine is one inventory row joined through stock to product and
// category, as served by GET /api/inventario and the inventory page.
type InventarioLine struct {
	ID        int     `json:"id"`
	Producto  string  `json:"producto"`
	Categoria *string `json:"categoria"`
	Ubicacion *string `json:"ubicacion"`
	Cantidad  int     `json:"cantidad"`
}
