package catalog

import (
	"fmt"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Material is a raw input (leather, rubber, ...) tracked by the stock ledger.
// Rows are reference data: created by admin action, never deleted.
type Material struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a finished good with a maintained on-hand quantity. OnHand is
// only ever moved by production (+) and dispatch (-); renames leave it alone.
type Product struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	OnHand int64  `json:"onHand"`
}

var (
	// ErrDuplicateName indicates a material or product name already exists.
	ErrDuplicateName = fmt.Errorf("catalog: %w: name already exists", httpx.ErrDuplicate)
	// ErrEmptyName indicates a missing required name.
	ErrEmptyName = fmt.Errorf("catalog: %w: name is required", httpx.ErrValidation)
	// ErrProductNotFound indicates an unknown product id.
	ErrProductNotFound = fmt.Errorf("catalog: %w: unknown product", httpx.ErrNotFound)
)
