package stock

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists raw-stock balances in PostgreSQL.
type Repository interface {
	AddStock(ctx context.Context, materialID, quantity int64) error
	List(ctx context.Context) ([]Balance, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// AddStock increments the balance for a material, creating the row on first
// intake. The upsert is a single atomic statement, so concurrent intakes of
// the same material cannot lose updates.
func (r *repository) AddStock(ctx context.Context, materialID, quantity int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO stock_balances (material_id, quantity)
		VALUES ($1, $2)
		ON CONFLICT (material_id)
		DO UPDATE SET quantity = stock_balances.quantity + EXCLUDED.quantity`,
		materialID, quantity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrUnknownMaterial
		}
		return err
	}
	return nil
}

// List returns every material joined with its balance, zero when no intake
// has happened yet, ordered by material name.
func (r *repository) List(ctx context.Context) ([]Balance, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.name, COALESCE(b.quantity, 0)
		FROM materials m
		LEFT JOIN stock_balances b ON b.material_id = m.id
		ORDER BY m.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []Balance
	for rows.Next() {
		var b Balance
		if err := rows.Scan(&b.MaterialID, &b.Name, &b.Quantity); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
