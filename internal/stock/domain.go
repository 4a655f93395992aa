package stock

import (
	"fmt"

	"github.com/mrshahbazdev/Active-Feet/internal/platform/httpx"
)

// Balance is one material's running raw-stock quantity joined with its name.
// A material without a balance row simply has zero stock.
type Balance struct {
	MaterialID int64  `json:"materialId"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
}

var (
	// ErrInvalidQuantity indicates a non-positive intake quantity.
	ErrInvalidQuantity = fmt.Errorf("stock: %w: quantity must be a positive integer", httpx.ErrValidation)
	// ErrUnknownMaterial indicates intake against a material id that does not exist.
	ErrUnknownMaterial = fmt.Errorf("stock: %w: unknown material", httpx.ErrNotFound)
)
