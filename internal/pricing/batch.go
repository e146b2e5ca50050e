package pricing

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
)

// BatchItem pairs a product with its current price and signals.
type BatchItem struct {
	ProductID    uuid.UUID   `json:"productId"`
	CurrentPrice money.Cents `json:"currentPriceCents"`
	Signals      Signals     `json:"signals"`
}

// BatchResult is the per-product outcome of a batch run.
type BatchResult struct {
	ProductID      uuid.UUID      `json:"productId"`
	Recommendation Recommendation `json:"recommendation"`
}

// DefaultBatchWorkers bounds batch concurrency when the caller passes 0.
const DefaultBatchWorkers = 4

// ComputeBatch applies Compute to each item independently. Items do not
// interact, so they run concurrently; results keep the input order. When the
// context is cancelled mid-batch, remaining items are skipped and their
// results stay zero-valued.
func (e Engine) ComputeBatch(ctx context.Context, items []BatchItem, workers int) []BatchResult {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	results := make([]BatchResult, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = BatchResult{
				ProductID:      item.ProductID,
				Recommendation: e.Compute(item.CurrentPrice, item.Signals),
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
