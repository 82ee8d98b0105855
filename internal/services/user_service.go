package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"ferrestock/internal/models"
	"ferrestock/internal/repositories"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	// Create stores a new user with a bcrypt-hashed clave. A taken login
	// name yields ErrUserExists and no change.
	Create(ctx context.Context, usuario, clave, nombre, rol string) (int, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Create(ctx context.Context, usuario, clave, nombre, rol string) (int, error) {
	if rol == "" {
		rol = models.RolUsuario
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Usuario: usuario,
		Clave:   string(hash),
		Nombre:  nombre,
		Rol:     rol,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrUserExists
		}
		return 0, err
	}
	return id, nil
}
