// Command firdesign designs a Kaiser-window lowpass FIR filter and writes its
// taps in the format firquant reads.
//
// Usage:
//
//	firdesign -cutoff 0.2 -transition 0.05 -atten 80
//	firdesign -fs 48000 -cutoff 4000 -transition 1000 -out lp.txt
//	firdesign -taps 63 -cutoff 0.1 -out lp.wav          # mono WAV impulse response
//
// Frequencies are normalized to the sample rate unless -fs is given.
package main

import (
	"io"
	"log"
	"os"

	"github.com/tphakala/go-fir-quantizer/internal/filter"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("firdesign: ")

	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "firdesign: ", 0)

	taps, err := design(opts)
	if err != nil {
		return err
	}

	if opts.verbose {
		resp := filter.FrequencyResponse(taps, responsePoints)
		logger.Printf("Designed %d taps (cutoff %.4f, %.0f dB)", len(taps), opts.cutoff, opts.attenuation)
		logger.Printf("Stopband peak: %.1f dB", stopbandPeakDB(resp, opts.cutoff+opts.transitionBW/2))
	}

	if err := writeTaps(opts.out, taps, opts.wavRate, opts.wavBits); err != nil {
		return err
	}

	if opts.verbose {
		logger.Printf("Wrote %s", opts.out)
	}
	return nil
}
