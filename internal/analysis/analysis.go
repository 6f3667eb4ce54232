// Package analysis measures the error introduced by quantizing FIR taps.
package analysis

import (
	"fmt"
	"math"
	"strings"

	quantizer "github.com/tphakala/go-fir-quantizer"
	"github.com/tphakala/go-fir-quantizer/internal/filter"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

const (
	// Frequency grid used to compare float and fixed responses
	responsePoints = 1024

	// Bins where the float response is below this level are ignored when
	// measuring deviation.
	responseFloorDB = -120.0

	l2Norm = 2.0
)

// Report summarizes how far the quantized taps are from the float taps.
type Report struct {
	// Taps is the number of coefficients analyzed.
	Taps int

	// Format is the Q-notation of the fixed-point format, e.g. "Q1.15".
	Format string

	// LSB is the weight of one least significant bit.
	LSB float64

	// MaxAbsError is the largest |fixed - float| over all taps.
	MaxAbsError float64

	// RMSError is the root mean square of fixed - float.
	RMSError float64

	// ErrorEnergy is Σ (fixed - float)².
	ErrorEnergy float64

	// DCGainFloat and DCGainFixed are the tap sums before and after quantization.
	DCGainFloat float64
	DCGainFixed float64

	// MaxDeviationDB is the largest magnitude-response difference in dB,
	// over bins where the float response is above -120 dB.
	MaxDeviationDB float64

	// Overflowed lists the indices of taps that wrapped around.
	Overflowed []int
}

// Analyze quantizes coeffs with cfg and compares the result to the input.
func Analyze(coeffs []float64, cfg *quantizer.Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	report := Report{
		Taps:   len(coeffs),
		Format: cfg.Format(),
		LSB:    math.Ldexp(1, -cfg.FracBits),
	}
	if len(coeffs) == 0 {
		return report, nil
	}

	fixed := quantizer.QuantizeAll(cfg, coeffs)
	recon := make([]float64, len(fixed))
	for i, v := range fixed {
		recon[i] = quantizer.Dequantize(v, cfg.TotalBits, cfg.FracBits)
	}

	diff := floats.SubTo(make([]float64, len(recon)), recon, coeffs)
	for i, d := range diff {
		// Rounding alone never moves a tap by a full LSB.
		if math.Abs(d) >= report.LSB {
			report.Overflowed = append(report.Overflowed, i)
		}
	}

	report.MaxAbsError = floats.Distance(recon, coeffs, math.Inf(1))
	report.RMSError = floats.Distance(recon, coeffs, l2Norm) / math.Sqrt(float64(len(coeffs)))
	report.ErrorEnergy = f64.DotProduct(diff, diff)
	report.DCGainFloat = f64.Sum(coeffs)
	report.DCGainFixed = f64.Sum(recon)
	report.MaxDeviationDB = maxDeviationDB(coeffs, recon)

	return report, nil
}

func maxDeviationDB(reference, quantized []float64) float64 {
	ref := filter.FrequencyResponse(reference, responsePoints)
	got := filter.FrequencyResponse(quantized, responsePoints)

	var worst float64
	for k, m := range ref.Magnitude {
		refDB := filter.MagnitudeDB(m)
		if refDB < responseFloorDB {
			continue
		}
		worst = max(worst, math.Abs(filter.MagnitudeDB(got.Magnitude[k])-refDB))
	}
	return worst
}

// String renders the report as aligned "key: value" lines.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Format:          %s (LSB %.3e)\n", r.Format, r.LSB)
	fmt.Fprintf(&b, "Taps:            %d\n", r.Taps)
	fmt.Fprintf(&b, "Max abs error:   %.3e (%.3f LSB)\n", r.MaxAbsError, r.MaxAbsError/r.LSB)
	fmt.Fprintf(&b, "RMS error:       %.3e\n", r.RMSError)
	fmt.Fprintf(&b, "Error energy:    %.3e\n", r.ErrorEnergy)
	fmt.Fprintf(&b, "DC gain:         %.9f -> %.9f\n", r.DCGainFloat, r.DCGainFixed)
	fmt.Fprintf(&b, "Max deviation:   %.4f dB\n", r.MaxDeviationDB)
	if len(r.Overflowed) > 0 {
		fmt.Fprintf(&b, "Wrapped taps:    %v\n", r.Overflowed)
	}
	return b.String()
}
