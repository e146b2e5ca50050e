package review_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/marginguard"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/pricing"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/review"
)

func mildScenario() marginguard.Scenario {
	return marginguard.Scenario{
		MaxRefundRatePct:          5,
		MaxShippingDelayDays:      1,
		MaxReturnShippingCost:     100,
		MaxPlatformFeeIncreaseBps: 100,
		CompetitorPriceCutPct:     5,
	}
}

func healthyProduct() review.Product {
	return review.Product{
		ID:           uuid.New(),
		CurrentPrice: 10000,
		Cost:         3000,
		Shipping:     500,
		PlatformFee:  300,
		AffiliateFee: 200,
		Signals: pricing.Signals{
			CurrentMarginBps:  4000,
			TargetMarginBps:   4000,
			ConversionRatePct: 3,
			InventoryLevel:    50,
			MaxInventory:      100,
			DemandTrend:       pricing.TrendMedium,
			Seasonality:       1,
		},
		Scenario: mildScenario(),
	}
}

func underwaterProduct() review.Product {
	return review.Product{
		ID:           uuid.New(),
		CurrentPrice: 1000,
		Cost:         2000,
		Shipping:     500,
		Signals:      pricing.Signals{ConversionRatePct: 0},
		Scenario:     mildScenario(),
	}
}

func TestReviewApprovesHealthyProduct(t *testing.T) {
	t.Parallel()

	svc := &review.Service{MarginFloorBps: 500, Logger: zerolog.Nop()}
	decisions := svc.Review(context.Background(), []review.Product{healthyProduct()})
	require.Len(t, decisions, 1)

	d := decisions[0]
	require.True(t, d.Approved)
	require.Equal(t, pricing.ActionHold, d.Action)
	require.Equal(t, money.Cents(10000), d.RecommendedPrice)
	require.GreaterOrEqual(t, d.Simulation.WorstCaseMarginBps, money.Bps(500))
	require.Zero(t, d.MinViablePrice%marginguard.PriceStep)
}

func TestReviewFallsBackToHoldOnRejection(t *testing.T) {
	t.Parallel()

	svc := &review.Service{MarginFloorBps: 500, Logger: zerolog.Nop()}
	decisions := svc.Review(context.Background(), []review.Product{underwaterProduct()})
	require.Len(t, decisions, 1)

	d := decisions[0]
	require.False(t, d.Approved)
	// The engine wanted a decrease; the guard veto forces a hold at the
	// current price instead.
	require.Equal(t, pricing.ActionHold, d.Action)
	require.Equal(t, money.Cents(1000), d.RecommendedPrice)
	require.Greater(t, d.MinViablePrice, d.CurrentPrice)
}

func TestReviewSkipsProductsAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := &review.Service{MarginFloorBps: 500, Logger: zerolog.Nop()}
	decisions := svc.Review(ctx, []review.Product{healthyProduct(), healthyProduct()})
	require.Len(t, decisions, 2)
	for _, d := range decisions {
		require.Equal(t, uuid.Nil, d.ProductID)
		require.Zero(t, d.RecommendedPrice)
	}
}

func TestReviewPreservesOrder(t *testing.T) {
	t.Parallel()

	products := []review.Product{healthyProduct(), underwaterProduct(), healthyProduct()}
	svc := &review.Service{MarginFloorBps: 500, Workers: 2, Logger: zerolog.Nop()}
	decisions := svc.Review(context.Background(), products)
	require.Len(t, decisions, len(products))
	for i, p := range products {
		require.Equal(t, p.ID, decisions[i].ProductID)
	}
	require.True(t, decisions[0].Approved)
	require.False(t, decisions[1].Approved)
	require.True(t, decisions[2].Approved)
}
