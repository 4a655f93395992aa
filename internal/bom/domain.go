package bom

import (
	"fmt"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Requirement is one bill-of-materials line: a product needs qtyPerUnit of a
// material for every unit built. Advisory planning data only; nothing here
// consults or moves the raw stock ledger.
type Requirement struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	MaterialID   int64   `json:"materialId"`
	MaterialName string  `json:"materialName,omitempty"`
	QtyPerUnit   float64 `json:"qtyPerUnit"`
}

var (
	// ErrInvalidQuantity indicates a non-positive quantity per unit.
	ErrInvalidQuantity = fmt.Errorf("bom: %w: quantity per unit must be positive", httpx.ErrValidation)
	// ErrDuplicateRequirement indicates the product already requires that
	// material. The (product_id, material_id) uniqueness constraint enforces
	// this, so concurrent adds cannot race past a pre-check.
	ErrDuplicateRequirement = fmt.Errorf("bom: %w: requirement already exists", httpx.ErrDuplicate)
	// ErrUnknownEntity indicates a reference to a product, material or
	// requirement id that does not exist.
	ErrUnknownEntity = fmt.Errorf("bom: %w: unknown entity", httpx.ErrNotFound)
)
