package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	materials map[string]Material
	products  map[string]Product
	nextID    int64
	// events drives the recompute paths: production minus dispatch per product.
	produced   map[int64]int64
	dispatched map[int64]int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		materials:  make(map[string]Material),
		products:   make(map[string]Product),
		produced:   make(map[int64]int64),
		dispatched: make(map[int64]int64),
	}
}

func (r *memoryRepo) ListMaterials(ctx context.Context) ([]Material, error) {
	var out []Material
	for _, m := range r.materials {
		out = append(out, m)
	}
	return out, nil
}

func (r *memoryRepo) CreateMaterial(ctx context.Context, name string) (Material, error) {
	if _, ok := r.materials[name]; ok {
		return Material{}, ErrDuplicateName
	}
	r.nextID++
	m := Material{ID: r.nextID, Name: name}
	r.materials[name] = m
	return m, nil
}

func (r *memoryRepo) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) CreateProduct(ctx context.Context, name string) (Product, error) {
	if _, ok := r.products[name]; ok {
		return Product{}, ErrDuplicateName
	}
	r.nextID++
	p := Product{ID: r.nextID, Name: name}
	r.products[name] = p
	return p, nil
}

func (r *memoryRepo) RenameProduct(ctx context.Context, id int64, name string) error {
	if _, ok := r.products[name]; ok {
		return ErrDuplicateName
	}
	for old, p := range r.products {
		if p.ID == id {
			delete(r.products, old)
			p.Name = name
			r.products[name] = p
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *memoryRepo) RecomputeOnHand(ctx context.Context, productID int64) (int64, error) {
	for name, p := range r.products {
		if p.ID == productID {
			p.OnHand = r.produced[productID] - r.dispatched[productID]
			r.products[name] = p
			return p.OnHand, nil
		}
	}
	return 0, ErrProductNotFound
}

func (r *memoryRepo) RecomputeAllOnHand(ctx context.Context) (int64, error) {
	var changed int64
	for name, p := range r.products {
		want := r.produced[p.ID] - r.dispatched[p.ID]
		if p.OnHand != want {
			p.OnHand = want
			r.products[name] = p
			changed++
		}
	}
	return changed, nil
}

func TestAddMaterialTrimsName(t *testing.T) {
	svc := NewService(newMemoryRepo())
	m, err := svc.AddMaterial(context.Background(), "  Leather  ")
	require.NoError(t, err)
	require.Equal(t, "Leather", m.Name)
	require.NotZero(t, m.ID)
}

func TestAddMaterialRejectsEmptyName(t *testing.T) {
	svc := NewService(newMemoryRepo())
	_, err := svc.AddMaterial(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestAddMaterialDuplicate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()
	_, err := svc.AddMaterial(ctx, "Glue")
	require.NoError(t, err)
	_, err = svc.AddMaterial(ctx, "Glue")
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestAddProductStartsAtZeroOnHand(t *testing.T) {
	svc := NewService(newMemoryRepo())
	p, err := svc.AddProduct(context.Background(), "Runner Classic")
	require.NoError(t, err)
	require.Zero(t, p.OnHand)
}

func TestRenameProduct(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, "Runer Clasic")
	require.NoError(t, err)
	require.NoError(t, svc.RenameProduct(ctx, p.ID, "Runner Classic"))

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Runner Classic", products[0].Name)

	require.ErrorIs(t, svc.RenameProduct(ctx, 999, "Other"), ErrProductNotFound)
	require.ErrorIs(t, svc.RenameProduct(ctx, p.ID, "  "), ErrEmptyName)
}

func TestRecomputeOnHandRepairsDrift(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, "Trail Pro")
	require.NoError(t, err)

	repo.produced[p.ID] = 40
	repo.dispatched[p.ID] = 15

	onHand, err := svc.RecomputeOnHand(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, int64(25), onHand)

	// Second run is a no-op sweep.
	changed, err := svc.RecomputeAllOnHand(ctx)
	require.NoError(t, err)
	require.Zero(t, changed)
}
