package dispatch

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/db"
)

// TxRepository exposes the per-transaction operations used by the service.
type TxRepository interface {
	InsertOrder(ctx context.Context, orderID, customerName string) error
	InsertLine(ctx context.Context, orderID string, line Line) error
	DecrementOnHand(ctx context.Context, productID, quantity int64) (int64, error)
}

// Repository persists dispatch orders in PostgreSQL.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	Today(ctx context.Context) ([]TodayLine, error)
}

type repository struct {
	pool *pgxpool.Pool
}

type txRepo struct {
	tx pgx.Tx
}

// NewRepository constructs a Repository backed by the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// WithTx runs fn inside one RepeatableRead transaction. Any error rolls the
// whole order back, so a header without its lines can never be observed.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepo{tx: tx})
	})
}

func (r *repository) Today(ctx context.Context) ([]TodayLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.order_id, p.name, o.customer_name, d.quantity, d.unit_price, d.created_at
		FROM dispatch_lines d
		JOIN products p ON p.id = d.product_id
		JOIN orders o ON o.order_id = d.order_id
		WHERE d.created_at::date = CURRENT_DATE
		ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []TodayLine
	for rows.Next() {
		var l TodayLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductName, &l.CustomerName, &l.Quantity, &l.UnitPrice, &l.Timestamp); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (t *txRepo) InsertOrder(ctx context.Context, orderID, customerName string) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO orders (order_id, customer_name) VALUES ($1, $2)`,
		orderID, customerName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateOrder
		}
		return err
	}
	return nil
}

func (t *txRepo) InsertLine(ctx context.Context, orderID string, line Line) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO dispatch_lines (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`,
		orderID, line.ProductID, line.Quantity, line.UnitPrice)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrUnknownProduct
		}
		return err
	}
	return nil
}

// DecrementOnHand subtracts from the product's cached on-hand quantity and
// returns the resulting value. The subtraction happens in SQL against the
// current row, never against a value read earlier by the caller.
func (t *txRepo) DecrementOnHand(ctx context.Context, productID, quantity int64) (int64, error) {
	var onHand int64
	err := t.tx.QueryRow(ctx,
		`UPDATE products SET on_hand = on_hand - $1 WHERE id = $2 RETURNING on_hand`,
		quantity, productID).Scan(&onHand)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUnknownProduct
		}
		return 0, err
	}
	return onHand, nil
}
