package quantizer

import (
	"fmt"
	"strings"
)

// Render formats values as a SystemVerilog array declaration:
//
//	logic signed [15:0] fir_coeffs [0:2] = '{16'h4000, 16'hC000, 16'h0000};
//
// Each value is masked to totalBits bits and printed as uppercase hex,
// zero-padded to ceil(totalBits/4) digits. Order is preserved.
func Render(values []uint64, arrayName string, totalBits int) string {
	digits := HexDigits(totalBits)
	mask := uint64(1)<<totalBits - 1

	var b strings.Builder
	b.Grow(len(values)*(digits+len(itemSeparator)+4) + len(arrayName) + 48)

	fmt.Fprintf(&b, "logic signed [%d:0] %s [0:%d] = %s", totalBits-1, arrayName, len(values)-1, literalOpen)
	for i, v := range values {
		if i > 0 {
			b.WriteString(itemSeparator)
		}
		fmt.Fprintf(&b, "%d'h%0*X", totalBits, digits, v&mask)
	}
	b.WriteString(literalClose)

	return b.String()
}

// HexDigits returns the number of hex digits needed for totalBits bits.
func HexDigits(totalBits int) int {
	return (totalBits + hexDigitBits - 1) / hexDigitBits
}
