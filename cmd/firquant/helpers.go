package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	quantizer "github.com/tphakala/go-fir-quantizer"
	"github.com/tphakala/go-fir-quantizer/internal/analysis"
)

// errUsage is returned when the command line cannot be parsed.
var errUsage = errors.New("invalid usage")

type options struct {
	cfg     quantizer.Config
	report  bool
	verbose bool
}

// parseOptions maps command-line flags onto a quantizer configuration.
// Defaults are those of quantizer.DefaultConfig.
func parseOptions(args []string, output io.Writer) (*options, error) {
	def := quantizer.DefaultConfig()
	fs := flag.NewFlagSet("firquant", flag.ContinueOnError)
	fs.SetOutput(output)

	in := fs.String("in", def.InputFile, "Coefficient file: one decimal per line, or a mono .wav impulse response")
	name := fs.String("name", def.ArrayName, "SystemVerilog array name")
	bits := fs.Int("bits", def.TotalBits, "Total bits per coefficient, sign included")
	frac := fs.Int("frac", def.FracBits, "Fractional bits")
	rounding := fs.String("rounding", def.Rounding.String(), "Tie rounding: even or away")
	report := fs.Bool("report", false, "Print a quantization error report to stderr")
	verbose := fs.Bool("v", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: firquant [options] [input]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		*in = fs.Arg(0)
	default:
		fs.Usage()
		return nil, fmt.Errorf("%w: expected at most one input file, got %d", errUsage, fs.NArg())
	}

	mode, err := quantizer.ParseRoundingMode(*rounding)
	if err != nil {
		return nil, err
	}

	return &options{
		cfg: quantizer.Config{
			InputFile: *in,
			ArrayName: *name,
			TotalBits: *bits,
			FracBits:  *frac,
			Rounding:  mode,
		},
		report:  *report,
		verbose: *verbose,
	}, nil
}

type conversion struct {
	literal string
	count   int
	report  *analysis.Report
}

// convertFile loads, quantizes and renders cfg.InputFile, optionally
// analyzing the quantization error.
func convertFile(cfg *quantizer.Config, withReport bool) (*conversion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := quantizer.LoadCoefficients(cfg.InputFile)
	if err != nil {
		return nil, err
	}

	literal, err := quantizer.ConvertValues(cfg, coeffs)
	if err != nil {
		return nil, err
	}

	res := &conversion{literal: literal, count: len(coeffs)}
	if withReport {
		r, err := analysis.Analyze(coeffs, cfg)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}
		res.report = &r
	}
	return res, nil
}
