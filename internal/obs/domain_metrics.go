package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// PricingDecisionsTotal counts dynamic pricing decisions by action.
	PricingDecisionsTotal *prometheus.CounterVec
	// MarginGuardResultsTotal counts margin guard verdicts.
	MarginGuardResultsTotal *prometheus.CounterVec
	// PriceReviewDuration records batch review latency in milliseconds.
	PriceReviewDuration prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific
// Prometheus collectors. Safe to call more than once.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		PricingDecisionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_decisions_total",
			Help:      "Count of dynamic pricing decisions by recommended action.",
		}, []string{"action"})
		MarginGuardResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "margin_guard_results_total",
			Help:      "Count of worst-case margin guard verdicts.",
		}, []string{"result"})
		PriceReviewDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "price_review_duration_ms",
			Help:      "Latency of pricing review batches in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		})
		collectors := []prometheus.Collector{PricingDecisionsTotal, MarginGuardResultsTotal, PriceReviewDuration}
		for _, collector := range collectors {
			if err := reg.Register(collector); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
					continue
				}
				panic(fmt.Errorf("register collector: %w", err))
			}
		}
	})
}
