package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrshahbazdev/Active-Feet/internal/shared"
)

// Repository loads user accounts.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (User, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, role, password_hash, created_at
		FROM users
		WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, shared.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
