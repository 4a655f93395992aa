package payroll

import (
	"fmt"
	"time"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Employee is a payroll subject. Balance is derived on every read from the
// work and payment streams and is never stored.
type Employee struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Contact   string  `json:"contact"`
	DailyRate float64 `json:"dailyRate"`
	Balance   float64 `json:"balance"`
}

// WorkEvent credits an employee's balance. Append-only.
type WorkEvent struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employeeId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// PaymentEvent debits an employee's balance. Append-only.
type PaymentEvent struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Amount     float64   `json:"amount"`
	Note       string    `json:"note"`
	Timestamp  time.Time `json:"timestamp"`
}

// History carries the two raw event streams, each newest-first. Merging for
// display is the caller's concern.
type History struct {
	Work     []WorkEvent    `json:"work"`
	Payments []PaymentEvent `json:"payments"`
}

var (
	// ErrInvalidName indicates a missing employee name.
	ErrInvalidName = fmt.Errorf("payroll: %w: name is required", httpx.ErrValidation)
	// ErrInvalidAmount indicates a non-finite amount.
	ErrInvalidAmount = fmt.Errorf("payroll: %w: amount must be a finite number", httpx.ErrValidation)
	// ErrUnknownEmployee indicates a reference to an employee that does not exist.
	ErrUnknownEmployee = fmt.Errorf("payroll: %w: unknown employee", httpx.ErrNotFound)
)
