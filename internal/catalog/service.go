package catalog

import (
	"context"
	"strings"
)

// Service coordinates catalog admin operations.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListMaterials returns all materials ordered by name.
func (s *Service) ListMaterials(ctx context.Context) ([]Material, error) {
	return s.repo.ListMaterials(ctx)
}

// AddMaterial registers a new raw material.
func (s *Service) AddMaterial(ctx context.Context, name string) (Material, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Material{}, ErrEmptyName
	}
	return s.repo.CreateMaterial(ctx, name)
}

// ListProducts returns all products with their current on-hand quantity.
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

// AddProduct creates a product with zero on-hand stock.
func (s *Service) AddProduct(ctx context.Context, name string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrEmptyName
	}
	return s.repo.CreateProduct(ctx, name)
}

// RenameProduct updates a product name. On-hand stock is deliberately not
// editable here; only production and dispatch move it.
func (s *Service) RenameProduct(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	return s.repo.RenameProduct(ctx, id, name)
}

// RecomputeOnHand repairs one product's cached on-hand quantity from the
// production and dispatch event streams.
func (s *Service) RecomputeOnHand(ctx context.Context, productID int64) (int64, error) {
	return s.repo.RecomputeOnHand(ctx, productID)
}

// RecomputeAllOnHand repairs every product's cached on-hand quantity.
func (s *Service) RecomputeAllOnHand(ctx context.Context) (int64, error) {
	return s.repo.RecomputeAllOnHand(ctx)
}
