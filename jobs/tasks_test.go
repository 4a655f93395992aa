package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/mrshahbazdev/Active-Feet/internal/catalog"
)

type stubCatalogRepo struct {
	catalog.Repository
	recomputed    []int64
	sweepCount    int64
	sweepsStarted int
}

func (s *stubCatalogRepo) RecomputeOnHand(ctx context.Context, productID int64) (int64, error) {
	s.recomputed = append(s.recomputed, productID)
	return 42, nil
}

func (s *stubCatalogRepo) RecomputeAllOnHand(ctx context.Context) (int64, error) {
	s.sweepsStarted++
	return s.sweepCount, nil
}

func TestRecomputeHandlerSingleProduct(t *testing.T) {
	repo := &stubCatalogRepo{}
	handler := NewOnHandRecomputeHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

	task, err := NewOnHandRecomputeTask(OnHandRecomputePayload{ProductID: 7})
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))
	require.Equal(t, []int64{7}, repo.recomputed)
	require.Zero(t, repo.sweepsStarted)
}

func TestRecomputeHandlerSweep(t *testing.T) {
	repo := &stubCatalogRepo{sweepCount: 3}
	handler := NewOnHandRecomputeHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

	task, err := NewOnHandRecomputeTask(OnHandRecomputePayload{})
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))
	require.Equal(t, 1, repo.sweepsStarted)
	require.Empty(t, repo.recomputed)
}

func TestRecomputeHandlerBadPayloadSkipsRetry(t *testing.T) {
	handler := NewOnHandRecomputeHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), &stubCatalogRepo{})

	err := handler(context.Background(), asynq.NewTask(TaskOnHandRecompute, []byte("{bad")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}
