package marginguard

import "github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"

// Sensitivity reports the margin delta (bps) from perturbing exactly one
// adverse factor by a fixed increment. Every delta is <= 0. The competitor
// cut is always the largest magnitude: price pressure hits revenue
// multiplicatively while the other probes are small additive effects.
type Sensitivity struct {
	RefundRate5Pct          money.Bps `json:"refundRate5Pct"`
	ShippingDelayPerDay     money.Bps `json:"shippingDelayPerDay"`
	CompetitorPrice10PctCut money.Bps `json:"competitorPrice10PctCut"`
	PlatformFeeIncrease5Pct money.Bps `json:"platformFeeIncrease5Pct"`
}

// ComputeSensitivity probes the margin around the given cost structure, one
// factor at a time.
func ComputeSensitivity(price, cost, shipping, otherCosts money.Cents) Sensitivity {
	p := CostProfile{Price: price, Cost: cost, Shipping: shipping, OtherFixedCosts: otherCosts}
	base := marginAt(p, Scenario{}, 1)
	return Sensitivity{
		RefundRate5Pct:          marginAt(p, Scenario{MaxRefundRatePct: 5}, 1) - base,
		ShippingDelayPerDay:     marginAt(p, Scenario{MaxShippingDelayDays: 1}, 1) - base,
		CompetitorPrice10PctCut: marginAt(p, Scenario{CompetitorPriceCutPct: 10}, 1) - base,
		PlatformFeeIncrease5Pct: marginAt(p, Scenario{MaxPlatformFeeIncreaseBps: 500}, 1) - base,
	}
}
