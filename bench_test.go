package quantizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
)

func benchCoefficients(n int) []float64 {
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 0.9 * math.Sin(float64(i)*0.37)
	}
	return coeffs
}

func BenchmarkQuantize(b *testing.B) {
	coeffs := benchCoefficients(1024)
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		sink ^= Quantize(coeffs[i&1023], DefaultTotalBits, DefaultFracBits)
	}
	_ = sink
}

func BenchmarkConvertValues(b *testing.B) {
	for _, n := range []int{64, 1024, 4096} {
		coeffs := benchCoefficients(n)
		cfg := DefaultConfig()
		b.Run(fmt.Sprintf("taps_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				if _, err := ConvertValues(&cfg, coeffs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkReadCoefficients(b *testing.B) {
	var sb strings.Builder
	for _, c := range benchCoefficients(4096) {
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for range b.N {
		if _, err := ReadCoefficients(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}
