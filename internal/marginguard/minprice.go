package marginguard

import "github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"

const (
	// PriceStep is the increment min prices are rounded up to.
	PriceStep money.Cents = 50

	maxGrowthSteps = 64
	maxBisectSteps = 64
	maxRoundRetry  = 32

	// maxSearchPrice bounds the growth phase so pathological scenarios
	// cannot overflow the search.
	maxSearchPrice money.Cents = 1 << 50
)

// MinPriceForWorstCase finds the smallest price whose worst-case margin under
// the scenario reaches targetMarginBps, rounded up to the next 50-cent
// increment. Worst-case margin is non-decreasing in price for fixed costs, so
// the search bisects; iteration caps bound the work even when the target
// sits above the scenario's asymptotic margin, in which case the capped
// search bound is returned.
func MinPriceForWorstCase(cost, shipping, platformFee, affiliateFee, otherFixedCosts money.Cents, sc Scenario, targetMarginBps money.Bps) money.Cents {
	worstAt := func(price money.Cents) money.Bps {
		p := CostProfile{
			Price:           price,
			Cost:            cost,
			Shipping:        shipping,
			PlatformFee:     platformFee,
			AffiliateFee:    affiliateFee,
			OtherFixedCosts: otherFixedCosts,
		}
		return marginAt(p, sc, 1)
	}

	// Grow an upper bound that satisfies the target. Each term is clamped
	// before summing so absurd cost inputs cannot wrap the bound.
	var fixed money.Cents
	for _, c := range []money.Cents{cost, shipping, platformFee, affiliateFee, otherFixedCosts} {
		c = money.ClampCents(c)
		if c > maxSearchPrice {
			c = maxSearchPrice
		}
		fixed += c
	}
	if fixed > maxSearchPrice/2 {
		fixed = maxSearchPrice / 2
	}
	hi := fixed * 2
	if hi < PriceStep {
		hi = PriceStep
	}
	satisfied := false
	for i := 0; i < maxGrowthSteps; i++ {
		if worstAt(hi) >= targetMarginBps {
			satisfied = true
			break
		}
		if hi >= maxSearchPrice {
			break
		}
		hi *= 2
		if hi > maxSearchPrice {
			hi = maxSearchPrice
		}
	}
	if !satisfied {
		return money.RoundUpTo(hi, PriceStep)
	}

	// Bisect down to the smallest satisfying price.
	lo := money.Cents(0)
	for i := 0; i < maxBisectSteps && hi-lo > 1; i++ {
		mid := lo + (hi-lo)/2
		if worstAt(mid) >= targetMarginBps {
			hi = mid
		} else {
			lo = mid
		}
	}

	// Rounding up cannot undershoot a non-decreasing margin, but the search
	// result is re-verified anyway before it is handed to callers.
	price := money.RoundUpTo(hi, PriceStep)
	for i := 0; i < maxRoundRetry && worstAt(price) < targetMarginBps; i++ {
		price += PriceStep
	}
	return price
}
