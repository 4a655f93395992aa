package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/mrshahbazdev/Active-Feet/internal/catalog"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskOnHandRecompute rebuilds product on-hand counters from the
	// production and dispatch event streams.
	TaskOnHandRecompute = "onhand:recompute"
)

// OnHandRecomputePayload selects which products to rebuild. A zero ProductID
// means all products.
type OnHandRecomputePayload struct {
	ProductID int64 `json:"product_id"`
}

// NewOnHandRecomputeTask constructs an Asynq task.
func NewOnHandRecomputeTask(payload OnHandRecomputePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOnHandRecompute, data), nil
}

// NewOnHandRecomputeHandler returns the Asynq handler for recompute tasks.
// The stored counter is a cache; the event streams stay authoritative, so a
// periodic rebuild repairs any drift.
func NewOnHandRecomputeHandler(logger *slog.Logger, repo catalog.Repository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload OnHandRecomputePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		if payload.ProductID > 0 {
			onHand, err := repo.RecomputeOnHand(ctx, payload.ProductID)
			if err != nil {
				return err
			}
			logger.Info("on-hand recomputed", "product_id", payload.ProductID, "on_hand", onHand)
			return nil
		}
		updated, err := repo.RecomputeAllOnHand(ctx)
		if err != nil {
			return err
		}
		logger.Info("on-hand recompute sweep finished", "products", updated)
		return nil
	}
}
