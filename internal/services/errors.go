package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown user and wrong password, so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")

	// ErrUserExists is returned when the login name is already taken.
	ErrUserExists = errors.New("usuario ya existe")

	// ErrStockNotFound is returned when an inventory entry references a
	// nonexistent stock id.
	ErrStockNotFound = errors.New("stock no encontrado")
)
