package quantizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-fir-quantizer/internal/testutil"
)

func TestRender_Default(t *testing.T) {
	got := Render([]uint64{0x4000, 0xC000, 0x0000}, DefaultArrayName, DefaultTotalBits)
	assert.Equal(t, "logic signed [15:0] fir_coeffs [0:2] = '{16'h4000, 16'hC000, 16'h0000};", got)
}

func TestRender_SingleValue(t *testing.T) {
	got := Render([]uint64{0x7FFF}, "taps", 16)
	assert.Equal(t, "logic signed [15:0] taps [0:0] = '{16'h7FFF};", got)
}

func TestRender_Empty(t *testing.T) {
	got := Render(nil, DefaultArrayName, DefaultTotalBits)
	assert.Equal(t, "logic signed [15:0] fir_coeffs [0:-1] = '{};", got)
	testutil.AssertHexItems(t, got, 16, 4, 0)
}

func TestRender_Uppercase(t *testing.T) {
	got := Render([]uint64{0xabcd, 0x00ef}, "c", 16)
	assert.Equal(t, "logic signed [15:0] c [0:1] = '{16'hABCD, 16'h00EF};", got)
}

func TestRender_Widths(t *testing.T) {
	tests := []struct {
		name   string
		values []uint64
		bits   int
		want   string
	}{
		{"8_bit", []uint64{0x80, 0x7F}, 8, "logic signed [7:0] h [0:1] = '{8'h80, 8'h7F};"},
		{"10_bit_pads_to_3", []uint64{0x3FF, 0x1}, 10, "logic signed [9:0] h [0:1] = '{10'h3FF, 10'h001};"},
		{"12_bit", []uint64{0x800}, 12, "logic signed [11:0] h [0:0] = '{12'h800};"},
		{"18_bit_pads_to_5", []uint64{0x20000}, 18, "logic signed [17:0] h [0:0] = '{18'h20000};"},
		{"32_bit", []uint64{0xC0000000}, 32, "logic signed [31:0] h [0:0] = '{32'hC0000000};"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.values, "h", tt.bits))
		})
	}
}

func TestRender_MasksToWidth(t *testing.T) {
	got := Render([]uint64{0x1FFFF}, "h", 16)
	assert.Equal(t, "logic signed [15:0] h [0:0] = '{16'hFFFF};", got)
}

func TestRender_ItemCountMatchesInput(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 1001} {
		values := make([]uint64, n)
		for i := range values {
			values[i] = uint64(i * 37)
		}
		testutil.AssertHexItems(t, Render(values, DefaultArrayName, 16), 16, 4, n)
	}
}

func TestHexDigits(t *testing.T) {
	assert.Equal(t, 1, HexDigits(2))
	assert.Equal(t, 2, HexDigits(8))
	assert.Equal(t, 3, HexDigits(9))
	assert.Equal(t, 4, HexDigits(16))
	assert.Equal(t, 8, HexDigits(32))
}
