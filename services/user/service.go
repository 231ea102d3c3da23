// File: services/user/service.go
package user

import (
	"context"
	"errors"
	"time"

	userRepo "befixed/database/repository/user"
	"befixed/models"
	"befixed/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Errors surfaced to the auth handlers.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenDuration = 90 * 24 * time.Hour

// UserService covers account registration and authentication.
type UserService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and returns it along with a signed token.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password, role string) (*models.User, string, error) {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	if role != models.RoleTechnician {
		role = models.RoleClient
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, "", err
	}

	u := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Authenticate verifies credentials and returns the account plus a token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetByID returns the account with the given id, or nil.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
