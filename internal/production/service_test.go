package production

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type event struct {
	kind      Kind
	subjectID int64
	quantity  int64
}

type memoryRepo struct {
	events   []event
	onHand   map[int64]int64
	products map[int64]string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{onHand: make(map[int64]int64), products: make(map[int64]string)}
}

func (r *memoryRepo) AppendComponentEvent(ctx context.Context, materialID, quantity int64) error {
	r.events = append(r.events, event{kind: KindMaterial, subjectID: materialID, quantity: quantity})
	return nil
}

func (r *memoryRepo) AppendProductEvent(ctx context.Context, productID, quantity int64) error {
	if _, ok := r.products[productID]; !ok {
		return ErrUnknownProduct
	}
	r.onHand[productID] += quantity
	r.events = append(r.events, event{kind: KindProduct, subjectID: productID, quantity: quantity})
	return nil
}

func (r *memoryRepo) TodayComponents(ctx context.Context) ([]DailyTotal, error) {
	return r.totals(KindMaterial), nil
}

func (r *memoryRepo) TodayProducts(ctx context.Context) ([]DailyTotal, error) {
	return r.totals(KindProduct), nil
}

func (r *memoryRepo) totals(kind Kind) []DailyTotal {
	sums := make(map[int64]int64)
	for _, e := range r.events {
		if e.kind == kind {
			sums[e.subjectID] += e.quantity
		}
	}
	var out []DailyTotal
	for id, total := range sums {
		out = append(out, DailyTotal{Name: r.products[id], TotalQuantity: total})
	}
	return out
}

func TestRecordProductMovesOnHand(t *testing.T) {
	repo := newMemoryRepo()
	repo.products[1] = "Runner Classic"
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.RecordProduct(ctx, 1, 12))
	require.NoError(t, svc.RecordProduct(ctx, 1, 8))
	require.Equal(t, int64(20), repo.onHand[1])
	require.Len(t, repo.events, 2)
}

func TestRecordProductUnknown(t *testing.T) {
	svc := NewService(newMemoryRepo())
	require.ErrorIs(t, svc.RecordProduct(context.Background(), 7, 5), ErrUnknownProduct)
}

func TestRecordComponentDoesNotTouchOnHand(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	require.NoError(t, svc.RecordComponent(context.Background(), 3, 40))
	require.Empty(t, repo.onHand)
	require.Len(t, repo.events, 1)
	require.Equal(t, KindMaterial, repo.events[0].kind)
}

func TestRecordRejectsNonPositiveQuantity(t *testing.T) {
	repo := newMemoryRepo()
	repo.products[1] = "Runner Classic"
	svc := NewService(repo)
	ctx := context.Background()

	require.ErrorIs(t, svc.RecordComponent(ctx, 3, 0), ErrInvalidQuantity)
	require.ErrorIs(t, svc.RecordProduct(ctx, 1, -4), ErrInvalidQuantity)
	require.Empty(t, repo.events)
}

func TestTodayTotalsGroupBySubject(t *testing.T) {
	repo := newMemoryRepo()
	repo.products[1] = "Runner Classic"
	repo.products[2] = "Trail Pro"
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.RecordProduct(ctx, 1, 5))
	require.NoError(t, svc.RecordProduct(ctx, 1, 7))
	require.NoError(t, svc.RecordProduct(ctx, 2, 3))

	totals, err := svc.TodayProducts(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byName := make(map[string]int64, len(totals))
	for _, tt := range totals {
		byName[tt.Name] = tt.TotalQuantity
	}
	require.Equal(t, int64(12), byName["Runner Classic"])
	require.Equal(t, int64(3), byName["Trail Pro"])
}
