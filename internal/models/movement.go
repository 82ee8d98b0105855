package models

import "time"

const (
	MovimientoEntrada = "entrada"
	MovimientoAjuste  = "ajuste"
)

// Movimiento records a stock change. It is a write-only audit log: nothing
// in the HTTP surface reads it back, and rows survive deletion of the stock
// line they reference.
type Movimiento struct {
	ID          int       `json:"id" db:"id"`
	StockID     int       `json:"stock_id" db:"stock_id"`
	Tipo        string    `json:"tipo" db:"tipo"`
	Cantidad    int       `json:"cantidad" db:"cantidad"`
	UsuarioID   *int      `json:"usuario_id" db:"usuario_id"`
	Descripcion *string   `json:"descripcion" db:"descripcion"`
	Fecha       time.Time `json:"fecha" db:"fecha"`
}
