// Package filter designs Kaiser-window lowpass FIR filters and evaluates
// their frequency response.
package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-fir-quantizer/internal/mathutil"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// Normalized frequency limits (1.0 = sample rate)
	nyquist = 0.5

	sincZeroThreshold = 1e-10

	defaultResponsePoints = 512

	// MagnitudeDB floor
	minMagnitude = 1e-10
	dbMultiplier = 20.0
)

// KaiserWindow returns a symmetric Kaiser window of the given length.
//
// The window is w[n] = I₀(β·√(1 - ((n-α)/α)²)) / I₀(β) with α = (N-1)/2,
// so it peaks at the center and tapers toward both ends. Larger β widens
// the main lobe and lowers the sidelobes; β = 0 gives a rectangular window.
// The center tap is exactly 1 for odd lengths.
//
// Parameters:
//   - length: number of samples; lengths below 1 return an empty slice
//   - beta: shape parameter, usually from mathutil.KaiserBeta
//
// Returns: the window samples, symmetric about the center.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	// w[n] = I₀(β·√(1 - ((n-α)/α)²)) / I₀(β), α = (N-1)/2
	alpha := float64(length-1) / 2
	i0Beta := mathutil.BesselI0(beta)
	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(max(0, 1-x*x))) / i0Beta
	}
	return window
}

// Params describes a lowpass design.
type Params struct {
	// NumTaps is the filter length. Odd lengths give a type I linear-phase filter.
	NumTaps int

	// Cutoff is the -6 dB frequency, normalized to the sample rate (0 to 0.5).
	Cutoff float64

	// Attenuation is the stopband attenuation in dB used to pick the Kaiser β.
	Attenuation float64

	// Gain is the DC gain the taps are normalized to.
	Gain float64
}

// Validate checks if the design parameters are usable.
func (p *Params) Validate() error {
	if p.NumTaps < mathutil.MinFilterLength || p.NumTaps > mathutil.MaxFilterLength {
		return fmt.Errorf("filter length %d out of range [%d, %d]", p.NumTaps, mathutil.MinFilterLength, mathutil.MaxFilterLength)
	}
	if p.Cutoff <= 0 || p.Cutoff >= nyquist {
		return fmt.Errorf("invalid cutoff frequency: %f (must be in (0, 0.5))", p.Cutoff)
	}
	if p.Attenuation < 0 {
		return fmt.Errorf("invalid attenuation: %f dB (must be positive)", p.Attenuation)
	}
	if p.Gain <= 0 {
		return fmt.Errorf("invalid gain: %f (must be positive)", p.Gain)
	}
	return nil
}

// DesignLowPass designs a windowed-sinc lowpass filter.
//
// The ideal lowpass impulse response sin(2πfc·x)/(πx) is centered on the
// middle tap and multiplied by a Kaiser window whose β is chosen from
// p.Attenuation. The taps are then scaled so their sum, the DC gain,
// equals p.Gain. The result is symmetric, so the filter has linear phase.
//
// Parameters:
//   - p.NumTaps: filter length in [MinFilterLength, MaxFilterLength]
//   - p.Cutoff: -6 dB point, normalized to the sample rate (0 < fc < 0.5)
//   - p.Attenuation: stopband attenuation in dB (e.g., 80)
//   - p.Gain: DC gain the taps are normalized to (e.g., 1.0)
//
// Returns: p.NumTaps float64 taps, or an error if p fails Validate.
func DesignLowPass(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	window := KaiserWindow(p.NumTaps, mathutil.KaiserBeta(p.Attenuation))
	taps := make([]float64, p.NumTaps)
	center := float64(p.NumTaps-1) / 2

	for n := range p.NumTaps {
		x := float64(n) - center
		// sin(2πfc·x)/(πx), limit 2fc at x = 0
		h := 2 * p.Cutoff
		if math.Abs(x) > sincZeroThreshold {
			h = math.Sin(2*math.Pi*p.Cutoff*x) / (math.Pi * x)
		}
		taps[n] = h * window[n]
	}

	if sum := f64.Sum(taps); math.Abs(sum) > sincZeroThreshold {
		f64.Scale(taps, taps, p.Gain/sum)
	}
	return taps, nil
}

// DesignLowPassAuto designs a lowpass filter whose length is estimated
// from the requested attenuation and transition width.
//
// The length comes from Kaiser's formula (see mathutil.EstimateFilterLength)
// and is rounded up to an odd value, so the filter is type I linear phase.
// Narrow transitions need long filters; the estimate is clamped to
// MaxFilterLength, which may leave the attenuation target unmet.
//
// Parameters:
//   - cutoff: -6 dB point, normalized to the sample rate (e.g., 0.2)
//   - transitionBW: width of the passband-to-stopband transition, normalized (e.g., 0.05)
//   - attenuation: stopband attenuation in dB (e.g., 80)
//   - gain: DC gain the taps are normalized to
//
// Returns: the designed taps, or an error if the derived Params are invalid.
func DesignLowPassAuto(cutoff, transitionBW, attenuation, gain float64) ([]float64, error) {
	return DesignLowPass(Params{
		NumTaps:     mathutil.EstimateFilterLength(attenuation, transitionBW),
		Cutoff:      cutoff,
		Attenuation: attenuation,
		Gain:        gain,
	})
}

// Response holds a magnitude response sampled from DC to Nyquist.
type Response struct {
	// Frequencies are normalized to the sample rate (0 to 0.5).
	Frequencies []float64

	// Magnitude is the linear magnitude at each frequency.
	Magnitude []float64
}

// FrequencyResponse evaluates |H(f)| of coeffs with a zero-padded real FFT.
// The FFT size is the smallest power of two holding both the taps and
// 2*numPoints samples, so at least numPoints+1 bins are returned.
func FrequencyResponse(coeffs []float64, numPoints int) Response {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	fftSize := 1
	for fftSize < 2*numPoints || fftSize < len(coeffs) {
		fftSize <<= 1
	}

	seq := make([]float64, fftSize)
	copy(seq, coeffs)
	spectrum := fourier.NewFFT(fftSize).Coefficients(nil, seq)

	resp := Response{
		Frequencies: make([]float64, len(spectrum)),
		Magnitude:   make([]float64, len(spectrum)),
	}
	for k, c := range spectrum {
		resp.Frequencies[k] = float64(k) / float64(fftSize)
		resp.Magnitude[k] = cmplx.Abs(c)
	}
	return resp
}

// MagnitudeDB converts a linear magnitude to dB, flooring at -200 dB.
func MagnitudeDB(magnitude float64) float64 {
	return dbMultiplier * math.Log10(max(magnitude, minMagnitude))
}
