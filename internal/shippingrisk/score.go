package shippingrisk

import "github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"

// Factors are the carrier and delivery signals feeding the risk score.
type Factors struct {
	DeliveryDaysAvg  float64 `json:"deliveryDaysAvg"`
	DelayProbability float64 `json:"delayProbability"`
	RefundRatePct    float64 `json:"refundRatePct"`
	CarrierID        string  `json:"carrierId"`
}

// Score is the computed shipping risk profile. ConversionImpactPct is
// signed: fast, reliable shipping nets a positive conversion boost.
type Score struct {
	RiskScore                      float64   `json:"riskScore"`
	ConversionImpactPct            float64   `json:"conversionImpact"`
	RecommendedMarginAdditionalBps money.Bps `json:"recommendedMarginAdditionalBps"`
	Recommendation                 string    `json:"recommendation"`
}

const (
	// BaselineDeliveryDays is the delivery time that carries no risk.
	BaselineDeliveryDays = 7.0
	// BaselineRefundRatePct is the refund rate considered normal.
	BaselineRefundRatePct = 5.0
)

const (
	deliveryWeight     = 4.0
	deliveryCap        = 35.0
	delayWeight        = 30.0
	refundWeight       = 2.0
	refundCap          = 35.0
	refundStepMid      = 10.0
	refundStepHigh     = 15.0
	impactDaysWeight   = 1.5
	impactDelayWeight  = 10.0
	impactRefundWeight = 0.8
	impactFloorPct     = -50.0
	impactCeilingPct   = 15.0
)

// ComputeScore turns delivery signals into a 0-100 risk score, a signed
// conversion impact and a margin buffer recommendation. The score is the sum
// of three independently capped contributions.
func ComputeScore(f Factors) Score {
	daysOver := f.DeliveryDaysAvg - BaselineDeliveryDays
	delivery := clamp(daysOver*deliveryWeight, 0, deliveryCap)
	delay := clamp(f.DelayProbability*delayWeight, 0, delayWeight)

	refundExcess := f.RefundRatePct - BaselineRefundRatePct
	refund := refundExcess * refundWeight
	if refund < 0 {
		refund = 0
	}
	// Step penalties: chronic refund carriers hurt more than linearly.
	if refundExcess > refundStepMid {
		refund += 10
	}
	if refundExcess > refundStepHigh {
		refund += 15
	}
	refund = clamp(refund, 0, refundCap)

	score := clamp(delivery+delay+refund, 0, 100)

	// The impact terms go negative for baseline-beating carriers, so a 1-day
	// courier with near-zero delays nets a conversion boost.
	impact := -(daysOver*impactDaysWeight + f.DelayProbability*impactDelayWeight + max(refundExcess, 0)*impactRefundWeight)
	impact = clamp(impact, impactFloorPct, impactCeilingPct)

	buffer, recommendation := bufferForScore(score)
	return Score{
		RiskScore:                      score,
		ConversionImpactPct:            impact,
		RecommendedMarginAdditionalBps: buffer,
		Recommendation:                 recommendation,
	}
}

func bufferForScore(score float64) (money.Bps, string) {
	switch {
	case score < 20:
		return 0, "low risk: no extra margin needed"
	case score < 40:
		return 100, "moderate risk: add a small margin buffer"
	case score < 70:
		return 250, "elevated risk: add margin buffer and review carrier"
	default:
		return 500, "high risk: add margin buffer, consider switching carrier"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
