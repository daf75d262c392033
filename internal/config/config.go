// Package config содержит логику чтения конфигурации демонстрационного сценария.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры демонстрационного сценария.
type Config struct {
	LoyaltyThreshold     int     `env:"LOYALTY_THRESHOLD"`
	DemandPricingPercent float64 `env:"DEMAND_PRICING_PERCENT"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envLoyaltyThreshold := cfg.LoyaltyThreshold
	envDemandPercent := cfg.DemandPricingPercent

	flag.IntVar(&cfg.LoyaltyThreshold, "l", 3, "orders required for the loyalty discount")
	flag.Float64Var(&cfg.DemandPricingPercent, "p", 10, "demand pricing increase in percent")

	flag.Parse()

	if envLoyaltyThreshold != 0 {
		cfg.LoyaltyThreshold = envLoyaltyThreshold
	}
	if envDemandPercent != 0 {
		cfg.DemandPricingPercent = envDemandPercent
	}

	if cfg.LoyaltyThreshold <= 0 {
		cfg.LoyaltyThreshold = 3
	}
	if cfg.DemandPricingPercent <= 0 {
		cfg.DemandPricingPercent = 10
	}

	return cfg, nil
}
