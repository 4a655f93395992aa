package bom

import "context"

// Service coordinates bill-of-materials edits.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddRequirement links a material to a product with a quantity per unit.
func (s *Service) AddRequirement(ctx context.Context, productID, materialID int64, qtyPerUnit float64) (Requirement, error) {
	if productID <= 0 || materialID <= 0 {
		return Requirement{}, ErrUnknownEntity
	}
	if qtyPerUnit <= 0 {
		return Requirement{}, ErrInvalidQuantity
	}
	return s.repo.Insert(ctx, productID, materialID, qtyPerUnit)
}

// UpdateRequirement replaces the material and quantity of an existing line.
func (s *Service) UpdateRequirement(ctx context.Context, id, materialID int64, qtyPerUnit float64) error {
	if id <= 0 || materialID <= 0 {
		return ErrUnknownEntity
	}
	if qtyPerUnit <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.Update(ctx, id, materialID, qtyPerUnit)
}

// RemoveRequirement deletes a line. Unlike materials and products, BOM lines
// may be deleted freely; they carry no history.
func (s *Service) RemoveRequirement(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrUnknownEntity
	}
	return s.repo.Delete(ctx, id)
}

// ListRequirements lists a product's lines with material names, ordered by
// material name.
func (s *Service) ListRequirements(ctx context.Context, productID int64) ([]Requirement, error) {
	if productID <= 0 {
		return nil, ErrUnknownEntity
	}
	return s.repo.ListByProduct(ctx, productID)
}
