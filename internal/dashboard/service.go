// Package dashboard aggregates the day's activity across modules into a
// single summary payload.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mrshahbazdev/Active-Feet/internal/dispatch"
	"github.com/mrshahbazdev/Active-Feet/internal/production"
	"github.com/mrshahbazdev/Active-Feet/internal/stock"
)

// Summary is the landing-page snapshot.
type Summary struct {
	Stock           []stock.Balance         `json:"stock"`
	TodayComponents []production.DailyTotal `json:"todayComponents"`
	TodayProducts   []production.DailyTotal `json:"todayProducts"`
	TodayDispatch   []dispatch.TodayLine    `json:"todayDispatch"`
}

// Service fans out to the module services that own each slice of the summary.
type Service struct {
	stock      *stock.Service
	production *production.Service
	dispatch   *dispatch.Service
}

// NewService builds Service.
func NewService(stockSvc *stock.Service, productionSvc *production.Service, dispatchSvc *dispatch.Service) *Service {
	return &Service{stock: stockSvc, production: productionSvc, dispatch: dispatchSvc}
}

// Summarize gathers all four sections concurrently. The first failure cancels
// the remaining reads and is returned as-is.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	var summary Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		balances, err := s.stock.List(ctx)
		if err != nil {
			return err
		}
		summary.Stock = balances
		return nil
	})
	g.Go(func() error {
		totals, err := s.production.TodayComponents(ctx)
		if err != nil {
			return err
		}
		summary.TodayComponents = totals
		return nil
	})
	g.Go(func() error {
		totals, err := s.production.TodayProducts(ctx)
		if err != nil {
			return err
		}
		summary.TodayProducts = totals
		return nil
	})
	g.Go(func() error {
		lines, err := s.dispatch.Today(ctx)
		if err != nil {
			return err
		}
		summary.TodayDispatch = lines
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
