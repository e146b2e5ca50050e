package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/config"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/obs"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/pricing"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/review"
)

func main() {
	inPath := flag.String("in", "", "path to a JSON array of products (default: stdin)")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	cfg := config.MustLoad()
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)
	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	products, err := readProducts(*inPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("read products")
	}

	svc := &review.Service{
		Engine:         pricing.Engine{HighConversionPct: cfg.HighConversionRatePct},
		MarginFloorBps: cfg.MarginFloorBps,
		Workers:        cfg.ReviewWorkers,
		Logger:         logger,
	}
	decisions := svc.Review(context.Background(), products)

	approved := 0
	for _, d := range decisions {
		if d.Approved {
			approved++
		}
	}
	logger.Info().
		Int("products", len(products)).
		Int("approved", approved).
		Int("rejected", len(products)-approved).
		Msg("price_review_completed")

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(decisions); err != nil {
		logger.Fatal().Err(err).Msg("encode decisions")
	}
}

func readProducts(path string) ([]review.Product, error) {
	var reader io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		reader = f
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var products []review.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
