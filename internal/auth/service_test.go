package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrshahbazdev/Active-Feet/internal/shared"
)

type memoryRepo struct {
	users map[string]User
}

func (r *memoryRepo) FindByUsername(ctx context.Context, username string) (User, error) {
	u, ok := r.users[username]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return u, nil
}

func newMemoryRepo(t *testing.T, username, password, role string) *memoryRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &memoryRepo{users: map[string]User{
		username: {ID: 1, Username: username, Role: role, PasswordHash: string(hash)},
	}}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newMemoryRepo(t, "admin", "password", "admin"))

	user, err := svc.Authenticate(context.Background(), "admin", "password")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Username)
	require.Equal(t, "admin", user.Role)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewService(newMemoryRepo(t, "admin", "password", "admin"))

	_, err := svc.Authenticate(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := NewService(newMemoryRepo(t, "admin", "password", "admin"))

	// Unknown user and wrong password are indistinguishable to the caller.
	_, err := svc.Authenticate(context.Background(), "ghost", "password")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}
