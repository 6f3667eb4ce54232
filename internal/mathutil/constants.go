package mathutil

// Bessel series limits
const (
	besselMaxTerms   = 500   // hard stop for the I₀ power series
	besselRelEpsilon = 1e-17 // stop once a term no longer changes the sum
)

// Kaiser & Schafer empirical β formula
const (
	kaiserAttHigh   = 50.0 // dB, above this β is linear in attenuation
	kaiserAttMedium = 21.0 // dB, below this β is zero (rectangular window)

	kaiserBetaHighCoeff  = 0.1102
	kaiserBetaHighOffset = 8.7

	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886
)

// Kaiser filter length formula: N ≈ (att - 7.95) / (2.285 · 2π · Δf) + 1
const (
	kaiserLengthOffset     = 7.95
	kaiserLengthMultiplier = 2.285
	kaiserLengthPiFactor   = 2.0 // Δf in cycles/sample, so ω = 2π·Δf

	MinFilterLength = 3
	MaxFilterLength = 8191
)
