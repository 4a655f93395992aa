package production

import "context"

// Service coordinates production recording.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordComponent appends a component output event.
func (s *Service) RecordComponent(ctx context.Context, materialID, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.AppendComponentEvent(ctx, materialID, quantity)
}

// RecordProduct appends a finished-goods event and bumps the product's
// on-hand quantity atomically.
func (s *Service) RecordProduct(ctx context.Context, productID, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.AppendProductEvent(ctx, productID, quantity)
}

// TodayComponents sums today's component events grouped by material name.
// Materials without events today are omitted.
func (s *Service) TodayComponents(ctx context.Context) ([]DailyTotal, error) {
	return s.repo.TodayComponents(ctx)
}

// TodayProducts sums today's finished-goods events grouped by product name.
func (s *Service) TodayProducts(ctx context.Context) ([]DailyTotal, error) {
	return s.repo.TodayProducts(ctx)
}
