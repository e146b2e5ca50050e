package shippingrisk

import "testing"

func TestFastReliableShippingBoostsConversion(t *testing.T) {
	score := ComputeScore(Factors{DeliveryDaysAvg: 1, DelayProbability: 0.05, RefundRatePct: 0, CarrierID: "express"})
	if score.ConversionImpactPct <= 0 {
		t.Fatalf("fast shipping must yield a positive conversion impact, got %f", score.ConversionImpactPct)
	}
	if score.RiskScore >= 20 {
		t.Fatalf("fast shipping must stay in the low-risk tier, got %f", score.RiskScore)
	}
	if score.RecommendedMarginAdditionalBps != 0 {
		t.Fatalf("low-risk tier must not recommend a buffer, got %d", score.RecommendedMarginAdditionalBps)
	}
}

func TestSlowUnreliableShippingScoresHigh(t *testing.T) {
	score := ComputeScore(Factors{DeliveryDaysAvg: 15, DelayProbability: 0.6, RefundRatePct: 18})
	if expected := 85.0; score.RiskScore != expected {
		t.Fatalf("expected risk score %f, got %f", expected, score.RiskScore)
	}
	if score.ConversionImpactPct >= 0 {
		t.Fatalf("slow shipping must yield a negative conversion impact, got %f", score.ConversionImpactPct)
	}
	if score.RecommendedMarginAdditionalBps != 500 {
		t.Fatalf("expected 500 bps buffer, got %d", score.RecommendedMarginAdditionalBps)
	}
}

func TestRefundStepPenalties(t *testing.T) {
	linear := ComputeScore(Factors{DeliveryDaysAvg: 7, RefundRatePct: 14}) // excess 9, below first step
	stepped := ComputeScore(Factors{DeliveryDaysAvg: 7, RefundRatePct: 16})
	if linear.RiskScore != 18 {
		t.Fatalf("expected linear refund contribution 18, got %f", linear.RiskScore)
	}
	// Excess 11 crosses the 10-point step: 22 + 10.
	if stepped.RiskScore != 32 {
		t.Fatalf("expected stepped refund contribution 32, got %f", stepped.RiskScore)
	}
}

func TestScoreClampedToHundred(t *testing.T) {
	score := ComputeScore(Factors{DeliveryDaysAvg: 100, DelayProbability: 1, RefundRatePct: 50})
	if score.RiskScore != 100 {
		t.Fatalf("expected total clamp at 100, got %f", score.RiskScore)
	}
}

func TestBufferTiers(t *testing.T) {
	cases := []struct {
		factors Factors
		buffer  int64
	}{
		{Factors{DeliveryDaysAvg: 7}, 0},
		{Factors{DeliveryDaysAvg: 13}, 100},  // score 24
		{Factors{DeliveryDaysAvg: 18}, 250},  // score 44
		{Factors{DeliveryDaysAvg: 100, DelayProbability: 1, RefundRatePct: 30}, 500},
	}
	for _, c := range cases {
		score := ComputeScore(c.factors)
		if int64(score.RecommendedMarginAdditionalBps) != c.buffer {
			t.Fatalf("score %f: expected %d bps buffer, got %d", score.RiskScore, c.buffer, score.RecommendedMarginAdditionalBps)
		}
		if score.Recommendation == "" {
			t.Fatal("every tier must carry a recommendation")
		}
	}
}
