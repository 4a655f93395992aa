package production

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/db"
)

// Repository persists production events in PostgreSQL.
type Repository interface {
	AppendComponentEvent(ctx context.Context, materialID, quantity int64) error
	AppendProductEvent(ctx context.Context, productID, quantity int64) error
	TodayComponents(ctx context.Context) ([]DailyTotal, error)
	TodayProducts(ctx context.Context) ([]DailyTotal, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// AppendComponentEvent records component output. Deliberately no touch of
// stock_balances: component production is a reporting signal, not intake.
func (r *repository) AppendComponentEvent(ctx context.Context, materialID, quantity int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO production_events (kind, subject_id, quantity) VALUES ($1, $2, $3)`,
		KindMaterial, materialID, quantity)
	return err
}

// AppendProductEvent records finished-goods output and increments the
// product's on-hand cache in the same transaction, so the event stream and
// the cached quantity can never drift apart.
func (r *repository) AppendProductEvent(ctx context.Context, productID, quantity int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET on_hand = on_hand + $1 WHERE id = $2`,
			quantity, productID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrUnknownProduct
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO production_events (kind, subject_id, quantity) VALUES ($1, $2, $3)`,
			KindProduct, productID, quantity)
		return err
	})
}

func (r *repository) TodayComponents(ctx context.Context) ([]DailyTotal, error) {
	return r.todayTotals(ctx, `
		SELECT m.name, SUM(e.quantity)
		FROM production_events e
		JOIN materials m ON m.id = e.subject_id
		WHERE e.kind = 'material' AND e.recorded_at::date = CURRENT_DATE
		GROUP BY m.name
		ORDER BY m.name ASC`)
}

func (r *repository) TodayProducts(ctx context.Context) ([]DailyTotal, error) {
	return r.todayTotals(ctx, `
		SELECT p.name, SUM(e.quantity)
		FROM production_events e
		JOIN products p ON p.id = e.subject_id
		WHERE e.kind = 'product' AND e.recorded_at::date = CURRENT_DATE
		GROUP BY p.name
		ORDER BY p.name ASC`)
}

func (r *repository) todayTotals(ctx context.Context, query string) ([]DailyTotal, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []DailyTotal
	for rows.Next() {
		var t DailyTotal
		if err := rows.Scan(&t.Name, &t.TotalQuantity); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
