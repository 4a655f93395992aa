package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS materials (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		on_hand BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS bom_lines (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		material_id BIGINT NOT NULL REFERENCES materials(id),
		qty_per_unit NUMERIC(12,4) NOT NULL,
		UNIQUE (product_id, material_id)
	)`,
	`CREATE TABLE IF NOT EXISTS stock_balances (
		material_id BIGINT PRIMARY KEY REFERENCES materials(id),
		quantity BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS production_events (
		id BIGSERIAL PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('material', 'product')),
		subject_id BIGINT NOT NULL,
		quantity BIGINT NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Completed',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS dispatch_lines (
		id BIGSERIAL PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(order_id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity BIGINT NOT NULL,
		unit_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		daily_rate NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS work_logs (
		id BIGSERIAL PRIMARY KEY,
		employee_id BIGINT NOT NULL REFERENCES employees(id),
		description TEXT NOT NULL DEFAULT '',
		amount NUMERIC(12,2) NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGSERIAL PRIMARY KEY,
		employee_id BIGINT NOT NULL REFERENCES employees(id),
		amount NUMERIC(12,2) NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_production_events_recorded_at ON production_events (recorded_at)`,
	`CREATE INDEX IF NOT EXISTS idx_dispatch_lines_created_at ON dispatch_lines (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_work_logs_employee ON work_logs (employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_employee ON payments (employee_id)`,
}

// defaultMaterials are seeded on first start so stock intake has
// materials to work against.
var defaultMaterials = []string{"Leather", "Rubber", "Laces", "Sole", "Fabric", "Glue"}

// Migrate creates the schema when missing and seeds reference data. The
// statements are idempotent, so running it on every start is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("platform/db: migrate: %w", err)
		}
	}
	if err := seedAdminUser(ctx, pool); err != nil {
		return err
	}
	return seedMaterials(ctx, pool)
}

func seedAdminUser(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = 'admin'`).Scan(&count); err != nil {
		return fmt.Errorf("platform/db: seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("platform/db: hash admin password: %w", err)
	}
	_, err = pool.Exec(ctx, `INSERT INTO users (username, password_hash, role) VALUES ('admin', $1, 'admin')`, string(hash))
	if err != nil {
		return fmt.Errorf("platform/db: seed admin: %w", err)
	}
	return nil
}

func seedMaterials(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM materials`).Scan(&count); err != nil {
		return fmt.Errorf("platform/db: seed materials: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultMaterials {
		if _, err := pool.Exec(ctx, `INSERT INTO materials (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("platform/db: seed materials: %w", err)
		}
	}
	return nil
}
