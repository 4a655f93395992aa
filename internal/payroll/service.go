package payroll

import (
	"context"
	"math"
	"strings"
)

// Service coordinates the employee ledger.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateEmployee registers a new employee. The daily rate is informational
// only; work amounts are recorded explicitly per event.
func (s *Service) CreateEmployee(ctx context.Context, name, role, contact string, dailyRate float64) (Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Employee{}, ErrInvalidName
	}
	if !isFinite(dailyRate) || dailyRate < 0 {
		dailyRate = 0
	}
	e := Employee{Name: name, Role: strings.TrimSpace(role), Contact: strings.TrimSpace(contact), DailyRate: dailyRate}
	id, err := s.repo.CreateEmployee(ctx, e)
	if err != nil {
		return Employee{}, err
	}
	e.ID = id
	return e, nil
}

// ListEmployees returns all employees with derived balances, ordered by name.
func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.repo.ListEmployees(ctx)
}

// AddWork appends a work credit. Negative amounts are accepted; the ledger
// records corrections the same way as regular entries.
func (s *Service) AddWork(ctx context.Context, employeeID int64, description string, amount float64) error {
	if employeeID <= 0 {
		return ErrUnknownEmployee
	}
	if !isFinite(amount) {
		return ErrInvalidAmount
	}
	return s.repo.InsertWork(ctx, employeeID, strings.TrimSpace(description), amount)
}

// AddPayment appends a payment debit. Negative amounts are accepted and act
// as refunds credited back to the balance.
func (s *Service) AddPayment(ctx context.Context, employeeID int64, amount float64, note string) error {
	if employeeID <= 0 {
		return ErrUnknownEmployee
	}
	if !isFinite(amount) {
		return ErrInvalidAmount
	}
	return s.repo.InsertPayment(ctx, employeeID, amount, strings.TrimSpace(note))
}

// History returns both event streams for one employee, each newest-first.
func (s *Service) History(ctx context.Context, employeeID int64) (History, error) {
	if employeeID <= 0 {
		return History{}, ErrUnknownEmployee
	}
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return History{}, err
	}
	if !exists {
		return History{}, ErrUnknownEmployee
	}
	work, err := s.repo.WorkHistory(ctx, employeeID)
	if err != nil {
		return History{}, err
	}
	payments, err := s.repo.PaymentHistory(ctx, employeeID)
	if err != nil {
		return History{}, err
	}
	return History{Work: work, Payments: payments}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
