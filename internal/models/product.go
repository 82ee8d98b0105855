package models

import "time"

type Product struct {
	ID          int       `json:"id" db:"id"`
	Nombre      string    `json:"nombre" db:"nombre"`
	CategoriaID *int      `json:"categoria_id" db:"categoria_id"`
	Descripcion *string   `json:"descripcion" db:"descripcion"`
	Precio      float64   `json:"precio" db:"precio"`
	SKU         *string   `json:"sku" db:"sku"`
	Estado      string    `json:"estado" db:"estado"`
	CreatedAt   time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}

// ProductListing is one row of the public product page: the product joined
// with its category name. Categoria is nil when the category reference
// dangles (left join).
type ProductListing struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Categoria   *string `json:"categoria"`
}
