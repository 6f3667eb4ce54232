package quantizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tphakala/go-fir-quantizer/internal/wavcoef"
)

// LoadCoefficients reads the coefficient source at path.
//
// Text sources hold one decimal literal per line; lines that are empty after
// trimming are skipped and order is preserved. Files with a .wav extension
// are decoded as a mono PCM impulse response instead.
//
// A missing or unreadable source returns an error wrapping ErrNotFound.
// A malformed line returns a *ParseError.
func LoadCoefficients(path string) ([]float64, error) {
	if strings.EqualFold(filepath.Ext(path), wavExtension) {
		return loadWAV(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer func() { _ = f.Close() }()

	return ReadCoefficients(f)
}

// ReadCoefficients parses one decimal coefficient per line from r.
func ReadCoefficients(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuf), maxLineLength)

	var coeffs []float64
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if hasHexPrefix(text) {
			return nil, &ParseError{Line: lineNo, Text: text, Err: errHexLiteral}
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Line: lineNo, Text: text}
		}
		coeffs = append(coeffs, v)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Line: lineNo + 1, Text: "<line too long>", Err: err}
		}
		return nil, fmt.Errorf("%w: read failed: %w", ErrNotFound, err)
	}

	return coeffs, nil
}

// hasHexPrefix reports whether text is a hexadecimal float such as 0x1p-1,
// which strconv accepts but is not a decimal literal.
func hasHexPrefix(text string) bool {
	if text != "" && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

func loadWAV(path string) ([]float64, error) {
	coeffs, err := wavcoef.Load(path)
	switch {
	case err == nil:
		return coeffs, nil
	case errors.Is(err, wavcoef.ErrInvalidWAV):
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
}
