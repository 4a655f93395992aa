package dispatch

import (
	"fmt"
	"time"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Line is one product position inside an order as supplied by the caller.
type Line struct {
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is the caller-facing shape of a dispatch order.
type Order struct {
	OrderID      string `json:"orderId"`
	CustomerName string `json:"customerName"`
	Lines        []Line `json:"lines"`
}

// TodayLine is a dispatched line joined with product and customer names for
// the daily report.
type TodayLine struct {
	ID           int64     `json:"id"`
	OrderID      string    `json:"orderId"`
	ProductName  string    `json:"productName"`
	CustomerName string    `json:"customerName"`
	Quantity     int64     `json:"quantity"`
	UnitPrice    float64   `json:"price"`
	Timestamp    time.Time `json:"timestamp"`
}

var (
	// ErrInvalidOrder indicates a structurally bad order (missing id, no
	// lines, non-positive quantity, negative price).
	ErrInvalidOrder = fmt.Errorf("dispatch: %w: invalid order", httpx.ErrValidation)
	// ErrDuplicateOrder indicates the order id was already used. The store's
	// primary key enforces this; a retry performs no partial writes.
	ErrDuplicateOrder = fmt.Errorf("dispatch: %w: order id already exists", httpx.ErrDuplicate)
	// ErrUnknownProduct indicates a line references a product that does not exist.
	ErrUnknownProduct = fmt.Errorf("dispatch: %w: unknown product", httpx.ErrNotFound)
	// ErrInsufficientStock is returned instead of letting on-hand go negative
	// when the strict stock policy is enabled.
	ErrInsufficientStock = fmt.Errorf("dispatch: %w: insufficient stock", httpx.ErrValidation)
)
