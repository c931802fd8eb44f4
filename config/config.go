// Package config provides configuration for the banking ledger. Settings
// come from an optional YAML file plus environment variables, with a .env
// file loaded automatically when present.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"bank-ledger/model"
)

// BootstrapRule is an interest rule seeded into the registry at startup.
type BootstrapRule struct {
	Date   string `yaml:"date"`
	RuleID string `yaml:"rule_id"`
	Rate   string `yaml:"rate"`
}

// Config represents the application configuration.
type Config struct {
	ListenAddr     string          `yaml:"listen_addr"`
	BootstrapRules []BootstrapRule `yaml:"bootstrap_rules"`
}

// Load reads configuration. A .env file in the working directory is loaded
// if present; BANK_CONFIG (or the optional explicit path) names a YAML file.
// Without any configuration the defaults apply: listen address :8080 and the
// single default interest rule RULE01, 1.95% effective 2023-01-01.
func Load(path ...string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr: getEnvOrDefault("BANK_LISTEN_ADDR", ":8080"),
		BootstrapRules: []BootstrapRule{
			{Date: "20230101", RuleID: "RULE01", Rate: "1.95"},
		},
	}

	file := os.Getenv("BANK_CONFIG")
	if len(path) > 0 && path[0] != "" {
		file = path[0]
	}
	if file == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	return cfg, nil
}

// Rules parses the bootstrap rules into domain values.
func (c *Config) Rules() ([]model.InterestRule, error) {
	rules := make([]model.InterestRule, 0, len(c.BootstrapRules))
	for _, r := range c.BootstrapRules {
		date, err := model.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("bootstrap rule %s: %w", r.RuleID, err)
		}
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("bootstrap rule %s: invalid rate %q", r.RuleID, r.Rate)
		}
		rules = append(rules, model.InterestRule{EffectiveDate: date, RuleID: r.RuleID, Rate: rate})
	}
	return rules, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
