package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"ferrestock/internal/models"
	"ferrestock/internal/repositories"
)

type AuthService interface {
	// Authenticate checks the credentials against the active users and
	// returns the matching user, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, usuario, clave string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Authenticate(ctx context.Context, usuario, clave string) (*models.User, error) {
	user, err := s.userRepo.GetActiveByUsuario(ctx, usuario)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Clave), []byte(clave)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
