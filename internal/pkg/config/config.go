package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	order "github.com/light-bringer/shop-pricing-service/internal/app/order/domain"
	pricing "github.com/light-bringer/shop-pricing-service/internal/app/pricing/domain"
)

// Config defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type Config struct {
	Env      string `envconfig:"ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Spanner database path: projects/<p>/instances/<i>/databases/<d>
	SpannerDB string `envconfig:"SPANNER_DB" required:"true"`

	// Order pricing knobs
	FreeDeliveryThreshold string `envconfig:"FREE_DELIVERY_THRESHOLD" default:"1000.00"`
}

// Load reads configuration from the environment, preferring a local .env
// file when present. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// PricingPolicy parses the configured thresholds into the order pricing
// policy.
func (c *Config) PricingPolicy() (order.PricingPolicy, error) {
	threshold, err := pricing.ParseMoney(c.FreeDeliveryThreshold)
	if err != nil {
		return order.PricingPolicy{}, fmt.Errorf("invalid FREE_DELIVERY_THRESHOLD: %w", err)
	}
	return order.PricingPolicy{FreeDeliveryThreshold: threshold}, nil
}
