package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrshahbazdev/Active-Feet/internal/shared"
)

// Service verifies credentials.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate checks the username and password against the stored hash. A
// missing user and a wrong password both return ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return User{}, shared.ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, shared.ErrInvalidCredentials
	}
	return user, nil
}
