package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists the employee ledger in PostgreSQL.
type Repository interface {
	CreateEmployee(ctx context.Context, e Employee) (int64, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	EmployeeExists(ctx context.Context, id int64) (bool, error)
	InsertWork(ctx context.Context, employeeID int64, description string, amount float64) error
	InsertPayment(ctx context.Context, employeeID int64, amount float64, note string) error
	WorkHistory(ctx context.Context, employeeID int64) ([]WorkEvent, error)
	PaymentHistory(ctx context.Context, employeeID int64) ([]PaymentEvent, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository backed by the shared pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) CreateEmployee(ctx context.Context, e Employee) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO employees (name, role, contact, daily_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		e.Name, e.Role, e.Contact, e.DailyRate).Scan(&id)
	return id, err
}

// ListEmployees derives each balance as total work minus total paid via two
// correlated aggregate subqueries, absent sums defaulting to zero.
func (r *repository) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.name, e.role, e.contact, e.daily_rate,
			COALESCE((SELECT SUM(amount) FROM work_logs WHERE employee_id = e.id), 0)
			- COALESCE((SELECT SUM(amount) FROM payments WHERE employee_id = e.id), 0) AS balance
		FROM employees e
		ORDER BY e.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Contact, &e.DailyRate, &e.Balance); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *repository) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repository) InsertWork(ctx context.Context, employeeID int64, description string, amount float64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO work_logs (employee_id, description, amount) VALUES ($1, $2, $3)`,
		employeeID, description, amount)
	return translateFK(err)
}

func (r *repository) InsertPayment(ctx context.Context, employeeID int64, amount float64, note string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (employee_id, amount, note) VALUES ($1, $2, $3)`,
		employeeID, amount, note)
	return translateFK(err)
}

func (r *repository) WorkHistory(ctx context.Context, employeeID int64) ([]WorkEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, employee_id, description, amount, recorded_at
		FROM work_logs
		WHERE employee_id = $1
		ORDER BY recorded_at DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []WorkEvent
	for rows.Next() {
		var e WorkEvent
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Description, &e.Amount, &e.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *repository) PaymentHistory(ctx context.Context, employeeID int64) ([]PaymentEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, employee_id, amount, note, recorded_at
		FROM payments
		WHERE employee_id = $1
		ORDER BY recorded_at DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []PaymentEvent
	for rows.Next() {
		var e PaymentEvent
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Amount, &e.Note, &e.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func translateFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrUnknownEmployee
	}
	return err
}
