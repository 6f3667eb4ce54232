package quantizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "fir_coefficients.txt", cfg.InputFile)
	assert.Equal(t, "fir_coeffs", cfg.ArrayName)
	assert.Equal(t, 16, cfg.TotalBits)
	assert.Equal(t, 15, cfg.FracBits)
	assert.Equal(t, RoundHalfEven, cfg.Rounding)
	assert.Equal(t, 1, cfg.IntBits())
	assert.Equal(t, "Q1.15", cfg.Format())
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"q4_12", func(c *Config) { c.FracBits = 12 }, false},
		{"integer_only", func(c *Config) { c.FracBits = 0 }, false},
		{"widest", func(c *Config) { c.TotalBits, c.FracBits = 32, 31 }, false},
		{"narrowest", func(c *Config) { c.TotalBits, c.FracBits = 2, 1 }, false},
		{"away_rounding", func(c *Config) { c.Rounding = RoundHalfAwayFromZero }, false},
		{"dollar_in_name", func(c *Config) { c.ArrayName = "coef$0" }, false},
		{"frac_equals_total", func(c *Config) { c.FracBits = 16 }, true},
		{"frac_exceeds_total", func(c *Config) { c.FracBits = 20 }, true},
		{"negative_frac", func(c *Config) { c.FracBits = -1 }, true},
		{"total_too_small", func(c *Config) { c.TotalBits, c.FracBits = 1, 0 }, true},
		{"total_too_large", func(c *Config) { c.TotalBits = 33 }, true},
		{"empty_name", func(c *Config) { c.ArrayName = "" }, true},
		{"name_leading_digit", func(c *Config) { c.ArrayName = "1coeffs" }, true},
		{"name_with_space", func(c *Config) { c.ArrayName = "fir coeffs" }, true},
		{"name_with_bracket", func(c *Config) { c.ArrayName = "c[0]" }, true},
		{"unknown_rounding", func(c *Config) { c.Rounding = RoundingMode(7) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Range(t *testing.T) {
	cfg := DefaultConfig()
	lo, hi := cfg.Range()
	assert.InDelta(t, -1.0, lo, 0)
	assert.InDelta(t, 1-q15LSB, hi, 0)

	cfg.FracBits = 12
	lo, hi = cfg.Range()
	assert.InDelta(t, -8.0, lo, 0)
	assert.InDelta(t, 8-1.0/4096, hi, 0)
}

func TestConfig_QuantizeUsesRounding(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint64(0), cfg.Quantize(halfLSB))

	cfg.Rounding = RoundHalfAwayFromZero
	assert.Equal(t, uint64(1), cfg.Quantize(halfLSB))
}

func TestParseRoundingMode(t *testing.T) {
	tests := []struct {
		in   string
		want RoundingMode
	}{
		{"even", RoundHalfEven},
		{"EVEN", RoundHalfEven},
		{"half-even", RoundHalfEven},
		{"banker", RoundHalfEven},
		{" away ", RoundHalfAwayFromZero},
		{"half-away", RoundHalfAwayFromZero},
	}
	for _, tt := range tests {
		got, err := ParseRoundingMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRoundingMode("truncate")
	require.ErrorIs(t, err, ErrConfig)
}

func TestRoundingMode_String(t *testing.T) {
	assert.Equal(t, "even", RoundHalfEven.String())
	assert.Equal(t, "away", RoundHalfAwayFromZero.String())
	assert.Equal(t, "RoundingMode(9)", RoundingMode(9).String())
}
