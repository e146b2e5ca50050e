package review

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/marginguard"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/obs"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/pricing"
)

// Product is one unit of work for the pricing review job: current price,
// cost structure, demand signals and the adverse scenario it must survive.
type Product struct {
	ID              uuid.UUID            `json:"productId"`
	CurrentPrice    money.Cents          `json:"currentPriceCents"`
	Cost            money.Cents          `json:"costCents"`
	Shipping        money.Cents          `json:"shippingCents"`
	PlatformFee     money.Cents          `json:"platformFeeCents"`
	AffiliateFee    money.Cents          `json:"affiliateFeeCents"`
	OtherFixedCosts money.Cents          `json:"otherFixedCostsCents"`
	Signals         pricing.Signals      `json:"signals"`
	Scenario        marginguard.Scenario `json:"scenario"`
}

// Decision is the reviewed outcome for one product. When the recommended
// price fails the margin guard the decision falls back to holding the
// current price and carries the failing simulation.
type Decision struct {
	ProductID        uuid.UUID                    `json:"productId"`
	Action           pricing.Action               `json:"action"`
	CurrentPrice     money.Cents                  `json:"currentPriceCents"`
	RecommendedPrice money.Cents                  `json:"recommendedPriceCents"`
	Reason           string                       `json:"reason"`
	Approved         bool                         `json:"approved"`
	Simulation       marginguard.SimulationResult `json:"simulation"`
	MinViablePrice   money.Cents                  `json:"minViablePriceCents"`
}

// Service runs the pricing engines over product batches and reports every
// decision. Engines stay pure; logging and metrics live here.
type Service struct {
	Engine         pricing.Engine
	MarginFloorBps money.Bps
	Workers        int
	Logger         zerolog.Logger
}

// Review evaluates each product independently and returns decisions in input
// order. Work is bounded by Workers (DefaultBatchWorkers when unset). When
// the context is cancelled mid-batch, remaining products are skipped and
// their decisions stay zero-valued.
func (s *Service) Review(ctx context.Context, products []Product) []Decision {
	start := time.Now()
	workers := s.Workers
	if workers <= 0 {
		workers = pricing.DefaultBatchWorkers
	}
	decisions := make([]Decision, len(products))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range products {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decisions[i] = s.reviewOne(p)
			return nil
		})
	}
	_ = g.Wait()
	if obs.PriceReviewDuration != nil {
		obs.PriceReviewDuration.Observe(float64(time.Since(start).Milliseconds()))
	}
	return decisions
}

func (s *Service) reviewOne(p Product) Decision {
	rec := s.Engine.Compute(p.CurrentPrice, p.Signals)

	profile := marginguard.CostProfile{
		Price:           rec.NewPrice,
		Cost:            p.Cost,
		Shipping:        p.Shipping,
		PlatformFee:     p.PlatformFee,
		AffiliateFee:    p.AffiliateFee,
		OtherFixedCosts: p.OtherFixedCosts,
	}
	sim := marginguard.SimulateWithFloor(profile, p.Scenario, s.MarginFloorBps)

	decision := Decision{
		ProductID:        p.ID,
		Action:           rec.Action,
		CurrentPrice:     p.CurrentPrice,
		RecommendedPrice: rec.NewPrice,
		Reason:           rec.Reason,
		Approved:         sim.Approved,
		Simulation:       sim,
		MinViablePrice: marginguard.MinPriceForWorstCase(
			p.Cost, p.Shipping, p.PlatformFee, p.AffiliateFee, p.OtherFixedCosts,
			p.Scenario, s.MarginFloorBps,
		),
	}
	if !sim.Approved {
		decision.Action = pricing.ActionHold
		decision.RecommendedPrice = p.CurrentPrice
		decision.Reason = "recommended price rejected by margin guard: holding current price"
	}

	if obs.PricingDecisionsTotal != nil {
		obs.PricingDecisionsTotal.WithLabelValues(string(decision.Action)).Inc()
	}
	if obs.MarginGuardResultsTotal != nil {
		result := "approved"
		if !sim.Approved {
			result = "rejected"
		}
		obs.MarginGuardResultsTotal.WithLabelValues(result).Inc()
	}

	s.Logger.Info().
		Str("product_id", p.ID.String()).
		Str("action", string(decision.Action)).
		Int64("current_price_cents", int64(p.CurrentPrice)).
		Int64("recommended_price_cents", int64(decision.RecommendedPrice)).
		Int64("worst_case_margin_bps", int64(sim.WorstCaseMarginBps)).
		Int64("min_viable_price_cents", int64(decision.MinViablePrice)).
		Bool("approved", sim.Approved).
		Str("reason", decision.Reason).
		Msg("price_review_decision")

	return decision
}
