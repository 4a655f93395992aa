package bom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	lines  map[int64]Requirement
	nextID int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{lines: make(map[int64]Requirement)}
}

func (r *memoryRepo) Insert(ctx context.Context, productID, materialID int64, qtyPerUnit float64) (Requirement, error) {
	for _, line := range r.lines {
		if line.ProductID == productID && line.MaterialID == materialID {
			return Requirement{}, ErrDuplicateRequirement
		}
	}
	r.nextID++
	req := Requirement{ID: r.nextID, ProductID: productID, MaterialID: materialID, QtyPerUnit: qtyPerUnit}
	r.lines[req.ID] = req
	return req, nil
}

func (r *memoryRepo) Update(ctx context.Context, id, materialID int64, qtyPerUnit float64) error {
	line, ok := r.lines[id]
	if !ok {
		return ErrUnknownEntity
	}
	line.MaterialID = materialID
	line.QtyPerUnit = qtyPerUnit
	r.lines[id] = line
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.lines[id]; !ok {
		return ErrUnknownEntity
	}
	delete(r.lines, id)
	return nil
}

func (r *memoryRepo) ListByProduct(ctx context.Context, productID int64) ([]Requirement, error) {
	var out []Requirement
	for _, line := range r.lines {
		if line.ProductID == productID {
			out = append(out, line)
		}
	}
	return out, nil
}

func TestAddRequirement(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	req, err := svc.AddRequirement(ctx, 1, 2, 0.5)
	require.NoError(t, err)
	require.NotZero(t, req.ID)

	_, err = svc.AddRequirement(ctx, 1, 2, 0.75)
	require.ErrorIs(t, err, ErrDuplicateRequirement)
}

func TestAddRequirementValidation(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.AddRequirement(ctx, 0, 2, 0.5)
	require.ErrorIs(t, err, ErrUnknownEntity)
	_, err = svc.AddRequirement(ctx, 1, 2, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = svc.AddRequirement(ctx, 1, 2, -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateAndRemoveRequirement(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	req, err := svc.AddRequirement(ctx, 1, 2, 0.5)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRequirement(ctx, req.ID, 3, 1.25))
	lines, err := svc.ListRequirements(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(3), lines[0].MaterialID)
	require.Equal(t, 1.25, lines[0].QtyPerUnit)

	require.NoError(t, svc.RemoveRequirement(ctx, req.ID))
	require.ErrorIs(t, svc.RemoveRequirement(ctx, req.ID), ErrUnknownEntity)
}
