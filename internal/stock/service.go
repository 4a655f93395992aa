package stock

import "context"

// Service coordinates raw-stock intake and reads.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add records a stock intake. Intake only ever increases a balance; the
// consumption side is tracked externally, so no decrement exists here.
func (s *Service) Add(ctx context.Context, materialID, quantity int64) error {
	if materialID == 0 {
		return ErrUnknownMaterial
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.AddStock(ctx, materialID, quantity)
}

// List returns every material with its current balance, absent rows as zero.
func (s *Service) List(ctx context.Context) ([]Balance, error) {
	return s.repo.List(ctx)
}
