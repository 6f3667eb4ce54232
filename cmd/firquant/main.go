// Command firquant converts decimal FIR coefficients to a fixed-point
// SystemVerilog array literal.
//
// Usage:
//
//	firquant -in fir_coefficients.txt
//	firquant -in taps.txt -name lp_coeffs -bits 18 -frac 17
//	firquant -in ir.wav -report            # quantization report on stderr
//
// The literal is written to stdout only when the whole input converts;
// any error exits non-zero with nothing on stdout.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("firquant: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "firquant: ", 0)

	if opts.verbose {
		logger.Printf("Input: %s", opts.cfg.InputFile)
		logger.Printf("Format: %s in %d bits (rounding: %s)", opts.cfg.Format(), opts.cfg.TotalBits, opts.cfg.Rounding)
		logger.Printf("Array: %s", opts.cfg.ArrayName)
	}

	res, err := convertFile(&opts.cfg, opts.report)
	if err != nil {
		return err
	}

	if opts.verbose {
		logger.Printf("Converted %d coefficients", res.count)
	}
	if res.report != nil {
		fmt.Fprint(stderr, res.report.String())
		if n := len(res.report.Overflowed); n > 0 {
			logger.Printf("warning: %d coefficients outside %s range wrapped", n, opts.cfg.Format())
		}
	}

	_, err = fmt.Fprintln(stdout, res.literal)
	return err
}
