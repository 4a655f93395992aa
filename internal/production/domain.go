package production

import (
	"fmt"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Kind discriminates what a production event counts.
type Kind string

const (
	// KindMaterial is self-reported component output. It never moves the
	// raw stock ledger; intake is the authoritative source for that.
	KindMaterial Kind = "material"
	// KindProduct is finished-goods output and increments product on-hand.
	KindProduct Kind = "product"
)

// DailyTotal is one subject's summed output for the current calendar day.
type DailyTotal struct {
	Name          string `json:"name"`
	TotalQuantity int64  `json:"totalQuantity"`
}

var (
	// ErrInvalidQuantity indicates a non-positive production quantity.
	ErrInvalidQuantity = fmt.Errorf("production: %w: quantity must be a positive integer", httpx.ErrValidation)
	// ErrUnknownProduct indicates production against a product id that does not exist.
	ErrUnknownProduct = fmt.Errorf("production: %w: unknown product", httpx.ErrNotFound)
)
