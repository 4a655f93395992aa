package dispatch

import (
	"context"
	"strings"
)

// Service coordinates dispatch orders against the product catalog.
type Service struct {
	repo     Repository
	allowNeg bool
}

// ServiceConfig groups optional settings.
type ServiceConfig struct {
	// AllowNegativeStock keeps the storage layer from blocking an
	// over-dispatch. The interactive client pre-checks availability, so
	// this defaults to true and strict mode is opt-in.
	AllowNegativeStock bool
}

// NewService builds Service.
func NewService(repo Repository, cfg ServiceConfig) *Service {
	return &Service{repo: repo, allowNeg: cfg.AllowNegativeStock}
}

// CreateOrder writes the order header, all lines and the on-hand decrements
// in one transaction. Any failure leaves stock and history untouched.
func (s *Service) CreateOrder(ctx context.Context, order Order) error {
	if strings.TrimSpace(order.OrderID) == "" || strings.TrimSpace(order.CustomerName) == "" {
		return ErrInvalidOrder
	}
	if len(order.Lines) == 0 {
		return ErrInvalidOrder
	}
	for _, line := range order.Lines {
		if line.ProductID <= 0 || line.Quantity <= 0 || line.UnitPrice < 0 {
			return ErrInvalidOrder
		}
	}

	return s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		if err := tx.InsertOrder(ctx, order.OrderID, order.CustomerName); err != nil {
			return err
		}
		for _, line := range order.Lines {
			if err := tx.InsertLine(ctx, order.OrderID, line); err != nil {
				return err
			}
			onHand, err := tx.DecrementOnHand(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !s.allowNeg && onHand < 0 {
				return ErrInsufficientStock
			}
		}
		return nil
	})
}

// Today lists today's dispatched lines, newest first.
func (s *Service) Today(ctx context.Context) ([]TodayLine, error) {
	return s.repo.Today(ctx)
}
