package repositories

import (
	"context"

	"ferrestock/internal/models"
)

type UserRepository interface {
	GetActiveByUsuario(ctx context.Context, usuario string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (int, error)
	List(ctx context.Context) ([]*models.User, error)
}

type userRepo struct {
	db DB
}

func NewUserRepo(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetActiveByUsuario(ctx context.Context, usuario string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, usuario, clave, nombre, rol, estado, fecha_creacion
		FROM usuarios
		WHERE usuario = $1 AND estado = 'activo'
	`
	err := r.db.QueryRow(ctx, query, usuario).Scan(
		&user.ID, &user.Usuario, &user.Clave, &user.Nombre, &user.Rol, &user.Estado, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) (int, error) {
	var id int
	query := `
		INSERT INTO usuarios (usuario, clave, nombre, rol)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, user.Usuario, user.Clave, user.Nombre, user.Rol).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, usuario, nombre, rol, estado, fecha_creacion
		FROM usuarios
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Usuario, &user.Nombre, &user.Rol, &user.Estado, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
