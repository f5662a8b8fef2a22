package loan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampIdempotent(t *testing.T) {
	cases := []struct{ v, lo, hi float64 }{
		{-50, 0, 100},
		{50, 0, 100},
		{150, 0, 100},
		{0, 0, 0},
		{3.7, 1.2, 3.7},
	}
	for _, tc := range cases {
		once := Clamp(tc.v, tc.lo, tc.hi)
		assert.Equal(t, once, Clamp(once, tc.lo, tc.hi))
		assert.GreaterOrEqual(t, once, tc.lo)
		assert.LessOrEqual(t, once, tc.hi)
	}
}

func TestConfigClampHelpers(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, cfg.Amount.Min, cfg.ClampAmount(0))
	assert.Equal(t, cfg.Amount.Max, cfg.ClampAmount(9e9))
	assert.Equal(t, 25000.0, cfg.ClampAmount(25000))

	assert.Equal(t, int(cfg.Term.Min), cfg.ClampTerm(1))
	assert.Equal(t, int(cfg.Term.Max), cfg.ClampTerm(600))

	// Rate rounds to one decimal place after clamping.
	assert.Equal(t, 8.9, cfg.ClampRate(8.94))
	assert.Equal(t, 9.0, cfg.ClampRate(8.95))
	assert.Equal(t, cfg.Rate.Max, cfg.ClampRate(99))
	assert.Equal(t, cfg.Rate.Min, cfg.ClampRate(0))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculator.yaml")
	body := `
amount:
  min: 2000
  max: 100000
  step: 500
  default: 10000
term:
  min: 6
  max: 60
  step: 6
  default: 36
rate:
  min: 4.9
  max: 24.9
  step: 0.1
  default: 9.9
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, cfg.Amount.Min)
	assert.Equal(t, 36.0, cfg.Term.Default)
	assert.Equal(t, 24.9, cfg.Rate.Max)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
