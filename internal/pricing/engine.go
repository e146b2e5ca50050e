package pricing

import "github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"

// Trend buckets demand momentum.
type Trend string

const (
	TrendLow    Trend = "low"
	TrendMedium Trend = "medium"
	TrendHigh   Trend = "high"
)

// Action is the recommended price move.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionHold     Action = "hold"
)

// Signals are the inventory and demand inputs driving a price decision.
type Signals struct {
	CurrentMarginBps  money.Bps `json:"currentMarginBps"`
	TargetMarginBps   money.Bps `json:"targetMarginBps"`
	ConversionRatePct float64   `json:"conversionRate"`
	InventoryLevel    int       `json:"inventoryLevel"`
	MaxInventory      int       `json:"maxInventory"`
	DemandTrend       Trend     `json:"demandTrend"`
	Seasonality       float64   `json:"seasonality"`
}

// Recommendation is the outcome of a dynamic price computation.
type Recommendation struct {
	NewPrice               money.Cents `json:"newPriceCents"`
	Action                 Action      `json:"recommendedAction"`
	AdjustmentBps          money.Bps   `json:"adjustmentBps"`
	EstimatedConversionPct float64     `json:"estimatedConversionRate"`
	Reason                 string      `json:"reason"`
}

// DefaultHighConversionPct is the conversion rate above which demand is
// considered to outrun the current price.
const DefaultHighConversionPct = 8.0

const (
	overstockAdjustmentBps money.Bps = -500
	stockoutAdjustmentBps  money.Bps = 750
	noDemandAdjustmentBps  money.Bps = -500
	hotDemandAdjustmentBps money.Bps = 500

	convergenceMaxBps      = 300.0
	convergenceHoldBandBps = 25.0
	priceElasticity        = 1.5
)

// Engine computes price recommendations. The zero value uses defaults.
type Engine struct {
	// HighConversionPct overrides DefaultHighConversionPct when positive.
	HighConversionPct float64
}

// Compute recommends a price move from the current price and signals. The
// banded rules are checked in priority order; the first match wins. The
// returned price is always positive, even for a 1-cent input.
func (e Engine) Compute(current money.Cents, s Signals) Recommendation {
	if current < 1 {
		current = 1
	}
	high := e.HighConversionPct
	if high <= 0 {
		high = DefaultHighConversionPct
	}

	var adj money.Bps
	var reason string
	switch {
	case s.MaxInventory > 0 && s.InventoryLevel >= s.MaxInventory:
		adj, reason = overstockAdjustmentBps, "at inventory capacity: lower price to move stock"
	case s.MaxInventory > 0 && s.InventoryLevel*10 <= s.MaxInventory:
		adj, reason = stockoutAdjustmentBps, "near stockout: raise price to ration remaining supply"
	case s.ConversionRatePct <= 0:
		adj, reason = noDemandAdjustmentBps, "zero conversion: lower price to stimulate demand"
	case s.ConversionRatePct > high:
		adj, reason = hotDemandAdjustmentBps, "conversion far above normal band: capture margin"
	default:
		adj, reason = convergenceAdjustment(s)
	}

	newPrice := current + money.Share(current, adj)
	if newPrice < 1 {
		newPrice = 1
	}

	action := ActionHold
	if adj > 0 {
		action = ActionIncrease
	} else if adj < 0 {
		action = ActionDecrease
	}

	return Recommendation{
		NewPrice:               newPrice,
		Action:                 action,
		AdjustmentBps:          adj,
		EstimatedConversionPct: EstimateConversionAfterPriceChange(s.ConversionRatePct, float64(adj)/100),
		Reason:                 reason,
	}
}

// convergenceAdjustment steps the margin toward target, weighted by demand
// trend and seasonality. The step is capped so it cannot cross into the
// banded rules, and small gaps hold.
func convergenceAdjustment(s Signals) (money.Bps, string) {
	gap := float64(s.TargetMarginBps - s.CurrentMarginBps)
	seasonality := s.Seasonality
	if seasonality <= 0 {
		seasonality = 1
	}
	step := gap / 4 * trendWeight(s.DemandTrend) * seasonality
	if step > convergenceMaxBps {
		step = convergenceMaxBps
	}
	if step < -convergenceMaxBps {
		step = -convergenceMaxBps
	}
	if step > -convergenceHoldBandBps && step < convergenceHoldBandBps {
		return 0, "margin within target band: hold"
	}
	if step > 0 {
		return money.Bps(step), "margin below target: converge upward"
	}
	return money.Bps(step), "margin above target: converge downward"
}

func trendWeight(t Trend) float64 {
	switch t {
	case TrendLow:
		return 0.5
	case TrendHigh:
		return 1.5
	default:
		return 1.0
	}
}

// EstimateConversionAfterPriceChange applies a linear elasticity model:
// conversion degrades as price rises and recovers as it falls. The result
// is clamped to [0, 100] no matter how extreme the change.
func EstimateConversionAfterPriceChange(currentRate, pctPriceIncrease float64) float64 {
	estimated := currentRate * (1 - priceElasticity*pctPriceIncrease/100)
	if estimated < 0 {
		return 0
	}
	if estimated > 100 {
		return 100
	}
	return estimated
}
