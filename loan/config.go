package loan

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Bound describes one slider input: its range, step granularity and the
// value seeded before the user touches it.
type Bound struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Step    float64 `yaml:"step" json:"step"`
	Default float64 `yaml:"default" json:"default"`
}

// Config carries the calculator bounds. The amortization functions do not
// range-check; callers clamp through this config first.
type Config struct {
	Amount Bound `yaml:"amount" json:"amount"`
	Term   Bound `yaml:"term" json:"term"`
	Rate   Bound `yaml:"rate" json:"rate"`
}

// DefaultConfig mirrors the bounds the production calculator ships with.
func DefaultConfig() Config {
	return Config{
		Amount: Bound{Min: 1000, Max: 500000, Step: 1000, Default: 25000},
		Term:   Bound{Min: 12, Max: 84, Step: 6, Default: 48},
		Rate:   Bound{Min: 5.9, Max: 29.9, Step: 0.1, Default: 8.9},
	}
}

// LoadConfig reads calculator bounds from a YAML file. Missing fields fall
// back to the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load calculator config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("load calculator config %s: %w", path, err)
	}
	if cfg.Amount.Min <= 0 || cfg.Amount.Max < cfg.Amount.Min || cfg.Term.Min < 1 {
		return DefaultConfig(), fmt.Errorf("load calculator config %s: bounds are not sane", path)
	}
	return cfg, nil
}

// Clamp confines v to [lo, hi]. Clamping is idempotent.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ClampAmount confines a principal to the configured amount bounds.
func (c Config) ClampAmount(v float64) float64 {
	return Clamp(v, c.Amount.Min, c.Amount.Max)
}

// ClampTerm confines a term in months to the configured term bounds.
func (c Config) ClampTerm(v int) int {
	return int(Clamp(float64(v), c.Term.Min, c.Term.Max))
}

// ClampRate confines an annual rate to the configured rate bounds, then
// rounds to one decimal place.
func (c Config) ClampRate(v float64) float64 {
	return math.Round(Clamp(v, c.Rate.Min, c.Rate.Max)*10) / 10
}
