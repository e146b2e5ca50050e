package pricing_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/pricing"
)

func TestOverstockedDecreases(t *testing.T) {
	t.Parallel()

	rec := pricing.Engine{}.Compute(10000, pricing.Signals{
		InventoryLevel:    50,
		MaxInventory:      50,
		ConversionRatePct: 3,
	})
	require.Equal(t, pricing.ActionDecrease, rec.Action)
	require.Equal(t, money.Cents(9500), rec.NewPrice)
}

func TestNearStockoutIncreases(t *testing.T) {
	t.Parallel()

	rec := pricing.Engine{}.Compute(10000, pricing.Signals{
		InventoryLevel:    2,
		MaxInventory:      40,
		ConversionRatePct: 3,
	})
	require.Equal(t, pricing.ActionIncrease, rec.Action)
	require.Equal(t, money.Cents(10750), rec.NewPrice)
}

func TestZeroConversionDecreases(t *testing.T) {
	t.Parallel()

	rec := pricing.Engine{}.Compute(10000, pricing.Signals{
		InventoryLevel:    20,
		MaxInventory:      100,
		ConversionRatePct: 0,
	})
	require.Equal(t, pricing.ActionDecrease, rec.Action)
}

func TestHotDemandIncreases(t *testing.T) {
	t.Parallel()

	rec := pricing.Engine{}.Compute(10000, pricing.Signals{
		InventoryLevel:    50,
		MaxInventory:      100,
		ConversionRatePct: 12,
	})
	require.Equal(t, pricing.ActionIncrease, rec.Action)
	require.Equal(t, money.Cents(10500), rec.NewPrice)
	require.Less(t, rec.EstimatedConversionPct, 12.0)
}

func TestMarginConvergence(t *testing.T) {
	t.Parallel()

	base := pricing.Signals{
		CurrentMarginBps:  3000,
		TargetMarginBps:   4000,
		ConversionRatePct: 3,
		InventoryLevel:    50,
		MaxInventory:      100,
		DemandTrend:       pricing.TrendMedium,
		Seasonality:       1,
	}
	rec := pricing.Engine{}.Compute(10000, base)
	require.Equal(t, pricing.ActionIncrease, rec.Action)
	require.Equal(t, money.Bps(250), rec.AdjustmentBps)
	require.Equal(t, money.Cents(10250), rec.NewPrice)

	high := base
	high.DemandTrend = pricing.TrendHigh
	rec = pricing.Engine{}.Compute(10000, high)
	require.Equal(t, money.Bps(300), rec.AdjustmentBps, "step must cap at 300 bps")

	near := base
	near.CurrentMarginBps = 3950
	rec = pricing.Engine{}.Compute(10000, near)
	require.Equal(t, pricing.ActionHold, rec.Action)
	require.Equal(t, money.Cents(10000), rec.NewPrice)
}

func TestOneCentPriceNeverDropsToZero(t *testing.T) {
	t.Parallel()

	rec := pricing.Engine{}.Compute(1, pricing.Signals{ConversionRatePct: 0})
	require.Equal(t, pricing.ActionDecrease, rec.Action)
	require.Equal(t, money.Cents(1), rec.NewPrice)

	rec = pricing.Engine{}.Compute(0, pricing.Signals{ConversionRatePct: 0})
	require.Greater(t, rec.NewPrice, money.Cents(0))
}

func TestEstimateConversionClamps(t *testing.T) {
	t.Parallel()

	require.GreaterOrEqual(t, pricing.EstimateConversionAfterPriceChange(1, 500), 0.0)
	require.Zero(t, pricing.EstimateConversionAfterPriceChange(1, 500))
	require.InDelta(t, 3.5, pricing.EstimateConversionAfterPriceChange(2, -50), 1e-9)
	require.Equal(t, 100.0, pricing.EstimateConversionAfterPriceChange(80, -2000))
}

func TestComputeBatchSkipsItemsAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items := []pricing.BatchItem{
		{ProductID: uuid.New(), CurrentPrice: 10000, Signals: pricing.Signals{ConversionRatePct: 3}},
		{ProductID: uuid.New(), CurrentPrice: 5000, Signals: pricing.Signals{ConversionRatePct: 3}},
	}
	results := pricing.Engine{}.ComputeBatch(ctx, items, 1)
	require.Len(t, results, len(items))
	for _, r := range results {
		require.Zero(t, r.Recommendation.NewPrice)
	}
}

func TestComputeBatchPreservesOrder(t *testing.T) {
	t.Parallel()

	items := []pricing.BatchItem{
		{ProductID: uuid.New(), CurrentPrice: 10000, Signals: pricing.Signals{InventoryLevel: 50, MaxInventory: 50, ConversionRatePct: 3}},
		{ProductID: uuid.New(), CurrentPrice: 5000, Signals: pricing.Signals{InventoryLevel: 1, MaxInventory: 100, ConversionRatePct: 3}},
		{ProductID: uuid.New(), CurrentPrice: 2000, Signals: pricing.Signals{InventoryLevel: 50, MaxInventory: 100, ConversionRatePct: 0}},
	}
	results := pricing.Engine{}.ComputeBatch(context.Background(), items, 2)
	require.Len(t, results, len(items))
	for i, item := range items {
		require.Equal(t, item.ProductID, results[i].ProductID)
		require.Equal(t, pricing.Engine{}.Compute(item.CurrentPrice, item.Signals), results[i].Recommendation)
	}
}
