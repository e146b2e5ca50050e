package marginguard

import (
	"math"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/shippingrisk"
)

// Scenario bundles the adverse-factor ceilings a price must survive
// simultaneously. Each field is an upper bound, not an expectation.
type Scenario struct {
	MaxRefundRatePct          float64     `json:"maxRefundRatePct"`
	MaxShippingDelayDays      int         `json:"maxShippingDelayDays"`
	MaxReturnShippingCost     money.Cents `json:"maxReturnShippingCostCents"`
	MaxPlatformFeeIncreaseBps money.Bps   `json:"maxPlatformFeeIncreaseBps"`
	CompetitorPriceCutPct     float64     `json:"competitorPriceCutPct"`
}

// CostProfile is the price and cost structure of a single offer.
type CostProfile struct {
	Price           money.Cents `json:"priceCents"`
	Cost            money.Cents `json:"costCents"`
	Shipping        money.Cents `json:"shippingCents"`
	PlatformFee     money.Cents `json:"platformFeeCents"`
	AffiliateFee    money.Cents `json:"affiliateFeeCents"`
	OtherFixedCosts money.Cents `json:"otherFixedCostsCents"`
}

// normalized floors negative ceilings to zero and caps percentages, so a
// hostile or legacy record cannot turn an adverse factor into a bonus.
func (sc Scenario) normalized() Scenario {
	sc.MaxRefundRatePct = clampPct(sc.MaxRefundRatePct)
	if sc.MaxShippingDelayDays < 0 {
		sc.MaxShippingDelayDays = 0
	}
	sc.MaxReturnShippingCost = money.ClampCents(sc.MaxReturnShippingCost)
	sc.MaxPlatformFeeIncreaseBps = money.ClampBps(sc.MaxPlatformFeeIncreaseBps)
	sc.CompetitorPriceCutPct = clampPct(sc.CompetitorPriceCutPct)
	return sc
}

// normalized clamps negative money fields to zero. Records may arrive from
// untrusted or legacy callers; a negative cost must not inflate the margin.
func (p CostProfile) normalized() CostProfile {
	p.Cost = money.ClampCents(p.Cost)
	p.Shipping = money.ClampCents(p.Shipping)
	p.PlatformFee = money.ClampCents(p.PlatformFee)
	p.AffiliateFee = money.ClampCents(p.AffiliateFee)
	p.OtherFixedCosts = money.ClampCents(p.OtherFixedCosts)
	return p
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// SimulationResult reports the simulated margin spread and the verdict.
type SimulationResult struct {
	Approved           bool      `json:"isApproved"`
	BestCaseMarginBps  money.Bps `json:"bestCaseMarginBps"`
	AvgCaseMarginBps   money.Bps `json:"avgCaseMarginBps"`
	WorstCaseMarginBps money.Bps `json:"worstCaseMarginBps"`
}

// delayErosionBpsPerDay charges delayed deliveries beyond the tiered risk
// buffer: late orders cost support time and goodwill even when the carrier
// tier does not change.
const delayErosionBpsPerDay = 35.0

// Simulate computes best, average and worst-case margin for the profile
// under the scenario. Approval requires a strictly positive worst case.
// A deeply negative worst case is a valid rejection, never a failure.
func Simulate(p CostProfile, sc Scenario) SimulationResult {
	best := marginAt(p, sc, 0)
	avg := marginAt(p, sc, 0.5)
	worst := marginAt(p, sc, 1)
	return SimulationResult{
		Approved:           worst > 0,
		BestCaseMarginBps:  best,
		AvgCaseMarginBps:   avg,
		WorstCaseMarginBps: worst,
	}
}

// SimulateWithFloor is the strict variant: approval requires the worst-case
// margin to reach the caller-supplied floor.
func SimulateWithFloor(p CostProfile, sc Scenario, floor money.Bps) SimulationResult {
	result := Simulate(p, sc)
	result.Approved = result.WorstCaseMarginBps >= floor
	return result
}

// marginAt applies every adverse factor at fraction f of its ceiling
// (0 = best case, 1 = worst case) and returns the remaining margin in bps of
// the undiscounted price. Money stays in integer cents, floored step by step.
func marginAt(p CostProfile, sc Scenario, f float64) money.Bps {
	p = p.normalized()
	sc = sc.normalized()
	price := p.Price
	if price < 1 {
		price = 1
	}

	// Competitor pressure caps the achievable price; refunds erode the
	// revenue actually kept from it.
	pressured := price - money.MulPct(price, f*sc.CompetitorPriceCutPct)
	revenue := pressured - money.MulPct(pressured, f*sc.MaxRefundRatePct)

	feeIncrease := money.Share(price, money.Bps(math.Floor(f*float64(sc.MaxPlatformFeeIncreaseBps))))

	delayDays := f * float64(sc.MaxShippingDelayDays)
	delayProbability := 0.0
	if sc.MaxShippingDelayDays > 0 {
		delayProbability = f
	}
	risk := shippingrisk.ComputeScore(shippingrisk.Factors{
		DeliveryDaysAvg:  shippingrisk.BaselineDeliveryDays + delayDays,
		DelayProbability: delayProbability,
		RefundRatePct:    f * sc.MaxRefundRatePct,
	})
	delayBuffer := money.Share(price, risk.RecommendedMarginAdditionalBps)
	delayErosion := money.Share(price, money.Bps(math.Floor(delayDays*delayErosionBpsPerDay)))

	returnShipping := money.MulPct(sc.MaxReturnShippingCost, f*100)

	costs := p.Cost + p.Shipping + p.PlatformFee + p.AffiliateFee + p.OtherFixedCosts +
		feeIncrease + delayBuffer + delayErosion + returnShipping

	return money.RatioBps(revenue-costs, price)
}
