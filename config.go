package quantizer

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Config holds quantizer configuration.
type Config struct {
	// InputFile is the path of the coefficient source.
	// Plain text holds one decimal coefficient per line; a .wav file is read
	// as a mono impulse response.
	InputFile string

	// ArrayName is the SystemVerilog identifier of the rendered array.
	ArrayName string

	// TotalBits is the width of each fixed-point value, sign included.
	TotalBits int

	// FracBits is the number of fractional bits. The remaining
	// TotalBits-FracBits bits hold the integer part and sign.
	FracBits int

	// Rounding selects how ties are broken when scaling to an integer.
	Rounding RoundingMode
}

// DefaultConfig returns the Q1.15 configuration producing a 16-bit
// fir_coeffs array from fir_coefficients.txt.
func DefaultConfig() Config {
	return Config{
		InputFile: DefaultInputFile,
		ArrayName: DefaultArrayName,
		TotalBits: DefaultTotalBits,
		FracBits:  DefaultFracBits,
		Rounding:  RoundHalfEven,
	}
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.TotalBits < minTotalBits || c.TotalBits > maxTotalBits {
		return fmt.Errorf("%w: total bits must be %d-%d, got %d", ErrConfig, minTotalBits, maxTotalBits, c.TotalBits)
	}

	if c.FracBits < minFracBits || c.FracBits >= c.TotalBits {
		return fmt.Errorf("%w: fractional bits must be in [%d, %d), got %d", ErrConfig, minFracBits, c.TotalBits, c.FracBits)
	}

	if !identifierPattern.MatchString(c.ArrayName) {
		return fmt.Errorf("%w: array name %q is not a valid identifier", ErrConfig, c.ArrayName)
	}

	if !c.Rounding.valid() {
		return fmt.Errorf("%w: unknown rounding mode %d", ErrConfig, c.Rounding)
	}

	return nil
}

// IntBits returns the number of integer bits, sign included.
func (c *Config) IntBits() int {
	return c.TotalBits - c.FracBits
}

// Format returns the Q-notation name of the configured format, e.g. "Q1.15".
func (c *Config) Format() string {
	return fmt.Sprintf("Q%d.%d", c.IntBits(), c.FracBits)
}

// Range returns the smallest and largest real values representable without wrapping.
func (c *Config) Range() (lo, hi float64) {
	lo = -math.Ldexp(1, c.IntBits()-1)
	hi = math.Ldexp(1, c.IntBits()-1) - math.Ldexp(1, -c.FracBits)
	return lo, hi
}

// Quantize converts x using the configured format and rounding mode.
func (c *Config) Quantize(x float64) uint64 {
	return QuantizeWith(x, c.TotalBits, c.FracBits, c.Rounding)
}

// RoundingMode selects the tie-breaking rule applied to scaled values.
type RoundingMode int

const (
	// RoundHalfEven rounds ties to the nearest even integer.
	// This matches Python round(), so existing coefficient tables reproduce bit for bit.
	RoundHalfEven RoundingMode = iota

	// RoundHalfAwayFromZero rounds ties away from zero.
	RoundHalfAwayFromZero
)

func (m RoundingMode) valid() bool {
	return m == RoundHalfEven || m == RoundHalfAwayFromZero
}

func (m RoundingMode) round(x float64) float64 {
	if m == RoundHalfAwayFromZero {
		return math.Round(x)
	}
	return math.RoundToEven(x)
}

// String returns the flag spelling of the mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundHalfEven:
		return "even"
	case RoundHalfAwayFromZero:
		return "away"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// ParseRoundingMode maps a flag value to a RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even", "half-even", "banker":
		return RoundHalfEven, nil
	case "away", "half-away":
		return RoundHalfAwayFromZero, nil
	default:
		return 0, fmt.Errorf("%w: unknown rounding mode %q (want even or away)", ErrConfig, s)
	}
}
