package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/db"
)

// Repository persists catalog reference data in PostgreSQL.
type Repository interface {
	ListMaterials(ctx context.Context) ([]Material, error)
	CreateMaterial(ctx context.Context, name string) (Material, error)
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, name string) (Product, error)
	RenameProduct(ctx context.Context, id int64, name string) error
	RecomputeOnHand(ctx context.Context, productID int64) (int64, error)
	RecomputeAllOnHand(ctx context.Context) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) ListMaterials(ctx context.Context) ([]Material, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM materials ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (r *repository) CreateMaterial(ctx context.Context, name string) (Material, error) {
	var m Material
	err := r.pool.QueryRow(ctx, `INSERT INTO materials (name) VALUES ($1) RETURNING id, name`, name).Scan(&m.ID, &m.Name)
	if err != nil {
		return Material{}, translateUnique(err)
	}
	return m, nil
}

func (r *repository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, on_hand FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.OnHand); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) CreateProduct(ctx context.Context, name string) (Product, error) {
	var p Product
	err := r.pool.QueryRow(ctx, `INSERT INTO products (name, on_hand) VALUES ($1, 0) RETURNING id, name, on_hand`, name).Scan(&p.ID, &p.Name, &p.OnHand)
	if err != nil {
		return Product{}, translateUnique(err)
	}
	return p, nil
}

func (r *repository) RenameProduct(ctx context.Context, id int64, name string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return translateUnique(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// onHandFromEvents replays the two append-only streams that move on_hand.
const onHandFromEvents = `
	COALESCE((SELECT SUM(quantity) FROM production_events
	          WHERE kind = 'product' AND subject_id = products.id), 0)
	- COALESCE((SELECT SUM(quantity) FROM dispatch_lines
	            WHERE product_id = products.id), 0)`

// RecomputeOnHand rewrites one product's on_hand from its event history.
// Used by the repair job and by tests to verify the incremental cache.
func (r *repository) RecomputeOnHand(ctx context.Context, productID int64) (int64, error) {
	var onHand int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`UPDATE products SET on_hand = (`+onHandFromEvents+`) WHERE id = $1 RETURNING on_hand`,
			productID,
		).Scan(&onHand)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}
	return onHand, nil
}

// RecomputeAllOnHand rewrites every product's on_hand from event history and
// reports how many rows actually changed.
func (r *repository) RecomputeAllOnHand(ctx context.Context) (int64, error) {
	var changed int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET on_hand = (`+onHandFromEvents+`) WHERE on_hand <> (`+onHandFromEvents+`)`)
		if err != nil {
			return err
		}
		changed = tag.RowsAffected()
		return nil
	})
	return changed, err
}

func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateName
	}
	return err
}
