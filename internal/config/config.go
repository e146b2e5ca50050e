package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/pricing"
)

// Config holds engine tuning loaded from the environment. Every key has a
// default so the engine runs with an empty environment.
type Config struct {
	AppEnv                string
	LogLevel              string
	LogFormat             string
	MetricsNamespace      string
	MarginFloorBps        money.Bps
	HighConversionRatePct float64
	ReviewWorkers         int
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:                valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:              valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:             valueOrDefault(k.String("LOG_FORMAT"), "json"),
		MetricsNamespace:      valueOrDefault(k.String("METRICS_NAMESPACE"), "avatarg"),
		MarginFloorBps:        money.Bps(parseInt(k.String("MARGIN_FLOOR_BPS"), 500)),
		HighConversionRatePct: parseFloat(k.String("HIGH_CONVERSION_RATE_PCT"), pricing.DefaultHighConversionPct),
		ReviewWorkers:         parseInt(k.String("REVIEW_WORKERS"), pricing.DefaultBatchWorkers),
	}

	if cfg.MarginFloorBps < 0 {
		cfg.MarginFloorBps = 0
	}
	if cfg.ReviewWorkers < 1 {
		cfg.ReviewWorkers = 1
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseInt(value string, fallback int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseFloat(value string, fallback float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
