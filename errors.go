package quantizer

import (
	"errors"
	"fmt"
)

// Common errors returned by the quantizer.
var (
	// ErrNotFound indicates the coefficient source does not exist or cannot be read.
	ErrNotFound = errors.New("coefficient source not found")

	// ErrParse indicates a non-blank line is not a valid decimal coefficient.
	ErrParse = errors.New("invalid coefficient")

	// ErrConfig indicates an invalid quantizer configuration.
	ErrConfig = errors.New("invalid quantizer configuration")
)

// strconv.ParseFloat accepts hex floats such as 0x1p-1; coefficient files
// must be decimal.
var errHexLiteral = errors.New("hexadecimal literals are not accepted")

// ParseError reports a coefficient line that could not be parsed.
// It matches ErrParse with errors.Is.
type ParseError struct {
	// Line is the 1-based line number in the source.
	Line int

	// Text is the trimmed line content.
	Text string

	// Err is the underlying cause, or nil for non-finite values.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v at line %d: %q: %v", ErrParse, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%v at line %d: %q is not finite", ErrParse, e.Line, e.Text)
}

// Unwrap exposes both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
