package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tphakala/go-fir-quantizer/internal/filter"
	"github.com/tphakala/go-fir-quantizer/internal/wavcoef"
)

const (
	defaultCutoff       = 0.2
	defaultTransitionBW = 0.05
	defaultAttenuation  = 80.0
	defaultGain         = 1.0
	defaultOutput       = "fir_coefficients.txt"
	defaultWAVBits      = 24

	responsePoints = 2048
)

var (
	errUsage        = errors.New("invalid usage")
	errNoTransition = errors.New("transition bandwidth must be positive when -taps is not set")
)

type options struct {
	cutoff       float64 // normalized
	transitionBW float64 // normalized
	attenuation  float64
	gain         float64
	numTaps      int // 0 = estimate from attenuation and transition width
	out          string
	wavRate      int
	wavBits      int
	verbose      bool
}

func parseOptions(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("firdesign", flag.ContinueOnError)
	fs.SetOutput(output)

	cutoff := fs.Float64("cutoff", defaultCutoff, "Cutoff frequency (normalized, or Hz with -fs)")
	transition := fs.Float64("transition", defaultTransitionBW, "Transition bandwidth (normalized, or Hz with -fs)")
	atten := fs.Float64("atten", defaultAttenuation, "Stopband attenuation in dB")
	gain := fs.Float64("gain", defaultGain, "DC gain")
	taps := fs.Int("taps", 0, "Filter length (0 = estimate)")
	sampleRate := fs.Float64("fs", 0, "Sample rate in Hz; frequencies are given in Hz when set")
	out := fs.String("out", defaultOutput, "Output file (.txt one tap per line, .wav impulse response)")
	wavBits := fs.Int("wav-bits", defaultWAVBits, "Bit depth for .wav output (16, 24, 32)")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	opts := &options{
		cutoff:       *cutoff,
		transitionBW: *transition,
		attenuation:  *atten,
		gain:         *gain,
		numTaps:      *taps,
		out:          *out,
		wavRate:      wavcoef.DefaultSampleRate,
		wavBits:      *wavBits,
		verbose:      *verbose,
	}

	if *taps < 0 {
		return nil, fmt.Errorf("%w: filter length must not be negative, got %d", errUsage, *taps)
	}
	if *sampleRate < 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive", errUsage)
	}
	if *sampleRate > 0 {
		opts.cutoff /= *sampleRate
		opts.transitionBW /= *sampleRate
		opts.wavRate = int(*sampleRate)
	}

	return opts, nil
}

func design(opts *options) ([]float64, error) {
	if opts.numTaps > 0 {
		return filter.DesignLowPass(filter.Params{
			NumTaps:     opts.numTaps,
			Cutoff:      opts.cutoff,
			Attenuation: opts.attenuation,
			Gain:        opts.gain,
		})
	}
	if opts.transitionBW <= 0 {
		return nil, errNoTransition
	}
	return filter.DesignLowPassAuto(opts.cutoff, opts.transitionBW, opts.attenuation, opts.gain)
}

// writeTaps writes taps as text or, for a .wav path, as a PCM impulse response.
func writeTaps(path string, taps []float64, sampleRate, bitDepth int) (err error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return wavcoef.Write(path, taps, sampleRate, bitDepth)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(f)
	if err := formatTaps(w, taps); err != nil {
		return fmt.Errorf("failed to write taps: %w", err)
	}
	return w.Flush()
}

// formatTaps writes one tap per line with the shortest exact representation.
func formatTaps(w io.Writer, taps []float64) error {
	buf := make([]byte, 0, 32)
	for _, t := range taps {
		buf = strconv.AppendFloat(buf[:0], t, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// stopbandPeakDB returns the highest response level at or above edge.
func stopbandPeakDB(resp filter.Response, edge float64) float64 {
	peak := filter.MagnitudeDB(0)
	for k, f := range resp.Frequencies {
		if f >= edge {
			peak = max(peak, filter.MagnitudeDB(resp.Magnitude[k]))
		}
	}
	return peak
}
