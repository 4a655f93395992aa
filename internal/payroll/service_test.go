package payroll

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	employees map[int64]Employee
	work      []WorkEvent
	payments  []PaymentEvent
	nextID    int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{employees: make(map[int64]Employee)}
}

func (r *memoryRepo) CreateEmployee(ctx context.Context, e Employee) (int64, error) {
	r.nextID++
	e.ID = r.nextID
	r.employees[e.ID] = e
	return e.ID, nil
}

func (r *memoryRepo) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	for _, e := range r.employees {
		e.Balance = 0
		for _, w := range r.work {
			if w.EmployeeID == e.ID {
				e.Balance += w.Amount
			}
		}
		for _, p := range r.payments {
			if p.EmployeeID == e.ID {
				e.Balance -= p.Amount
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memoryRepo) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.employees[id]
	return ok, nil
}

func (r *memoryRepo) InsertWork(ctx context.Context, employeeID int64, description string, amount float64) error {
	if _, ok := r.employees[employeeID]; !ok {
		return ErrUnknownEmployee
	}
	r.work = append(r.work, WorkEvent{EmployeeID: employeeID, Description: description, Amount: amount})
	return nil
}

func (r *memoryRepo) InsertPayment(ctx context.Context, employeeID int64, amount float64, note string) error {
	if _, ok := r.employees[employeeID]; !ok {
		return ErrUnknownEmployee
	}
	r.payments = append(r.payments, PaymentEvent{EmployeeID: employeeID, Amount: amount, Note: note})
	return nil
}

func (r *memoryRepo) WorkHistory(ctx context.Context, employeeID int64) ([]WorkEvent, error) {
	var out []WorkEvent
	for _, w := range r.work {
		if w.EmployeeID == employeeID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *memoryRepo) PaymentHistory(ctx context.Context, employeeID int64) ([]PaymentEvent, error) {
	var out []PaymentEvent
	for _, p := range r.payments {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestCreateEmployeeCoercesDailyRate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	e, err := svc.CreateEmployee(ctx, " Imran Khan ", "stitcher", "0300-1111111", -500)
	require.NoError(t, err)
	require.Equal(t, "Imran Khan", e.Name)
	require.Zero(t, e.DailyRate)

	e, err = svc.CreateEmployee(ctx, "Ali Raza", "cutter", "", 1200)
	require.NoError(t, err)
	require.Equal(t, 1200.0, e.DailyRate)
}

func TestCreateEmployeeRequiresName(t *testing.T) {
	svc := NewService(newMemoryRepo())
	_, err := svc.CreateEmployee(context.Background(), "   ", "", "", 0)
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestBalanceIsWorkMinusPayments(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	worker, err := svc.CreateEmployee(ctx, "Imran Khan", "stitcher", "", 1200)
	require.NoError(t, err)
	idle, err := svc.CreateEmployee(ctx, "Sana Bibi", "packer", "", 900)
	require.NoError(t, err)

	require.NoError(t, svc.AddWork(ctx, worker.ID, "batch 12", 1200))
	require.NoError(t, svc.AddWork(ctx, worker.ID, "batch 13", 1200))
	require.NoError(t, svc.AddPayment(ctx, worker.ID, 1500, "advance"))

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)

	byID := make(map[int64]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	require.Equal(t, 900.0, byID[worker.ID].Balance)
	// An employee with no events sits at zero, not at an error.
	require.Zero(t, byID[idle.ID].Balance)
}

func TestNegativePaymentRaisesBalance(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	e, err := svc.CreateEmployee(ctx, "Imran Khan", "", "", 0)
	require.NoError(t, err)

	require.NoError(t, svc.AddPayment(ctx, e.ID, -200, "correction"))

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Equal(t, 200.0, employees[0].Balance)
}

func TestLedgerRejectsNonFiniteAmounts(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	e, err := svc.CreateEmployee(ctx, "Imran Khan", "", "", 0)
	require.NoError(t, err)

	require.ErrorIs(t, svc.AddWork(ctx, e.ID, "", math.NaN()), ErrInvalidAmount)
	require.ErrorIs(t, svc.AddPayment(ctx, e.ID, math.Inf(1), ""), ErrInvalidAmount)
}

func TestLedgerRequiresExistingEmployee(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	require.ErrorIs(t, svc.AddWork(ctx, 42, "", 100), ErrUnknownEmployee)
	require.ErrorIs(t, svc.AddPayment(ctx, 42, 100, ""), ErrUnknownEmployee)

	_, err := svc.History(ctx, 42)
	require.ErrorIs(t, err, ErrUnknownEmployee)
}

func TestHistoryKeepsStreamsSeparate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	e, err := svc.CreateEmployee(ctx, "Imran Khan", "", "", 0)
	require.NoError(t, err)

	require.NoError(t, svc.AddWork(ctx, e.ID, "batch 12", 1200))
	require.NoError(t, svc.AddPayment(ctx, e.ID, 500, "advance"))

	hist, err := svc.History(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, hist.Work, 1)
	require.Len(t, hist.Payments, 1)
	require.Equal(t, "batch 12", hist.Work[0].Description)
	require.Equal(t, "advance", hist.Payments[0].Note)
}
