// Package quantizer converts FIR filter coefficients to fixed-point values
// and renders them as a SystemVerilog array literal.
//
// # Quick Start
//
// Convert a coefficient file with the default Q1.15 configuration:
//
//	cfg := quantizer.DefaultConfig()
//	cfg.InputFile = "fir_coefficients.txt"
//	literal, err := quantizer.Convert(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(literal)
//
// For coefficients {0.5, -0.5, 0.0} this prints:
//
//	logic signed [15:0] fir_coeffs [0:2] = '{16'h4000, 16'hC000, 16'h0000};
//
// # Fixed-Point Format
//
// A value with TotalBits bits and FracBits fractional bits is computed as
//
//	round(x * 2^FracBits) mod 2^TotalBits
//
// i.e. the two's-complement bit pattern viewed as an unsigned integer.
// Values outside the signed range wrap silently; this matches the bitwise
// truncation hardware expects and is not reported as an error.
//
// # Rounding
//
// Ties are rounded half-to-even by default ([RoundHalfEven]). This is
// bit-compatible with coefficient tables produced by Python's round().
// [RoundHalfAwayFromZero] is available for toolchains that round the other way.
//
// # Input Sources
//
// [LoadCoefficients] reads plain text (one decimal per line, blank lines
// skipped) or, for .wav files, a mono PCM impulse response normalized to [-1, 1).
//
// # Errors
//
// Failures wrap one of [ErrNotFound], [ErrParse] or [ErrConfig] and can be
// tested with errors.Is. Configuration is validated before any input is read.
package quantizer
