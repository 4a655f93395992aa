package bom

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists bill-of-materials lines in PostgreSQL.
type Repository interface {
	Insert(ctx context.Context, productID, materialID int64, qtyPerUnit float64) (Requirement, error)
	Update(ctx context.Context, id, materialID int64, qtyPerUnit float64) error
	Delete(ctx context.Context, id int64) error
	ListByProduct(ctx context.Context, productID int64) ([]Requirement, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Insert(ctx context.Context, productID, materialID int64, qtyPerUnit float64) (Requirement, error) {
	var req Requirement
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bom_lines (product_id, material_id, qty_per_unit)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, material_id, qty_per_unit`,
		productID, materialID, qtyPerUnit,
	).Scan(&req.ID, &req.ProductID, &req.MaterialID, &req.QtyPerUnit)
	if err != nil {
		return Requirement{}, translate(err)
	}
	return req, nil
}

func (r *repository) Update(ctx context.Context, id, materialID int64, qtyPerUnit float64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bom_lines SET material_id = $1, qty_per_unit = $2 WHERE id = $3`,
		materialID, qtyPerUnit, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownEntity
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bom_lines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownEntity
	}
	return nil
}

func (r *repository) ListByProduct(ctx context.Context, productID int64) ([]Requirement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.product_id, b.material_id, m.name, b.qty_per_unit
		FROM bom_lines b
		JOIN materials m ON m.id = b.material_id
		WHERE b.product_id = $1
		ORDER BY m.name ASC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []Requirement
	for rows.Next() {
		var req Requirement
		if err := rows.Scan(&req.ID, &req.ProductID, &req.MaterialID, &req.MaterialName, &req.QtyPerUnit); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateRequirement
		case "23503":
			return ErrUnknownEntity
		}
	}
	return err
}
