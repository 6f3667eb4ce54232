package quantizer

import "math"

// Quantize converts x to a totalBits-wide two's-complement pattern with
// fracBits fractional bits, rounding ties to even.
//
// The scaled value is reduced modulo 2^totalBits, so out-of-range inputs wrap
// silently instead of saturating:
//
//	Quantize(-1.0, 16, 15)       == 0x8000
//	Quantize(0.99996948, 16, 15) == 0x7FFF
//	Quantize(1.0, 16, 15)        == 0x8000 // wraps
//
// Non-finite inputs, and inputs whose scaled value overflows float64, yield 0.
func Quantize(x float64, totalBits, fracBits int) uint64 {
	return QuantizeWith(x, totalBits, fracBits, RoundHalfEven)
}

// QuantizeWith is like Quantize but with an explicit rounding mode.
func QuantizeWith(x float64, totalBits, fracBits int, mode RoundingMode) uint64 {
	scaled := mode.round(math.Ldexp(x, fracBits))
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return 0
	}

	// math.Mod is exact for integral operands, so the wrap holds even for
	// values past 2^53.
	modulus := math.Ldexp(1, totalBits)
	wrapped := math.Mod(scaled, modulus)
	if wrapped < 0 {
		wrapped += modulus
	}
	return uint64(wrapped)
}

// QuantizeAll quantizes coeffs in order using cfg.
func QuantizeAll(cfg *Config, coeffs []float64) []uint64 {
	out := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		out[i] = cfg.Quantize(c)
	}
	return out
}

// Dequantize interprets the low totalBits bits of v as a signed
// two's-complement value and scales it by 2^-fracBits.
func Dequantize(v uint64, totalBits, fracBits int) float64 {
	signBit := uint64(1) << (totalBits - 1)
	v &= signBit<<1 - 1

	signed := int64(v)
	if v&signBit != 0 {
		signed -= int64(signBit << 1)
	}
	return math.Ldexp(float64(signed), -fracBits)
}
