package models

import "time"

const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"

	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

type User struct {
	ID        int       `json:"id" db:"id"`
	Usuario   string    `json:"usuario" db:"usuario"`
	Clave     string    `json:"-" db:"clave"` // bcrypt hash, never serialized
	Nombre    string    `json:"nombre" db:"nombre"`
	Rol       string    `json:"rol" db:"rol"`
	Estado    string    `json:"estado" db:"estado"`
	CreatedAt time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}
