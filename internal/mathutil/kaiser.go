// Package mathutil provides the special functions used by Kaiser window filter design.
package mathutil

import "math"

// BesselI0 computes the modified Bessel function of the first kind, order zero.
//
// It sums the power series Σ ((x/2)^k / k!)², which converges for every x
// and is accurate to full float64 precision for the β range used by Kaiser
// windows (0-40).
func BesselI0(x float64) float64 {
	half := x / 2
	sum := 1.0
	term := 1.0
	for k := 1; k <= besselMaxTerms; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*besselRelEpsilon {
			break
		}
	}
	return sum
}

// KaiserBeta returns the Kaiser window β that reaches the given stopband
// attenuation in dB.
//
// Uses Kaiser's empirical fit:
//   - A > 50:       β = 0.1102·(A - 8.7)
//   - 21 ≤ A ≤ 50:  β = 0.5842·(A - 21)^0.4 + 0.07886·(A - 21)
//   - A < 21:       β = 0 (rectangular window)
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		d := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(d, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*d
	default:
		return 0
	}
}

// EstimateFilterLength returns the odd number of taps needed for a Kaiser
// lowpass.
//
// Kaiser's estimate is N ≈ (A - 7.95) / (2.285 · 2π · Δf) + 1. The result
// is rounded up to an odd length and clamped to
// [MinFilterLength, MaxFilterLength].
//
// Parameters:
//   - attenuation: stopband attenuation in dB
//   - transitionBW: transition width normalized to the sample rate (0-0.5);
//     non-positive widths return MaxFilterLength
func EstimateFilterLength(attenuation, transitionBW float64) int {
	if transitionBW <= 0 {
		return MaxFilterLength
	}

	n := (attenuation-kaiserLengthOffset)/(kaiserLengthMultiplier*kaiserLengthPiFactor*math.Pi*transitionBW) + 1
	taps := int(math.Ceil(n))
	if taps%2 == 0 {
		taps++
	}

	return min(max(taps, MinFilterLength), MaxFilterLength)
}
