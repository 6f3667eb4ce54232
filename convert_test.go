package quantizer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fir-quantizer/internal/testutil"
)

const pipelineExpected = "logic signed [15:0] fir_coeffs [0:2] = '{16'h4000, 16'hC000, 16'h0000};"

func TestConvert_Pipeline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputFile = testutil.WriteTempFile(t, "fir_coefficients.txt", "0.5\n-0.5\n0.0\n")

	got, err := Convert(&cfg)
	require.NoError(t, err)
	assert.Equal(t, pipelineExpected, got)
}

func TestConvertValues_Pipeline(t *testing.T) {
	cfg := DefaultConfig()
	got, err := ConvertValues(&cfg, []float64{0.5, -0.5, 0.0})
	require.NoError(t, err)
	assert.Equal(t, pipelineExpected, got)
}

func TestConvert_BlankLinesAndOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArrayName = "lp"
	cfg.InputFile = testutil.WriteTempFile(t, "c.txt", "\n0.25\n\n-1.0\n0.99996948\n\n")

	got, err := Convert(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "logic signed [15:0] lp [0:2] = '{16'h2000, 16'h8000, 16'h7FFF};", got)
}

func TestConvert_CustomFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalBits, cfg.FracBits = 18, 17

	got, err := ConvertValues(&cfg, []float64{0.5, -0.5})
	require.NoError(t, err)
	assert.Equal(t, "logic signed [17:0] fir_coeffs [0:1] = '{18'h10000, 18'h30000};", got)
}

func TestConvert_ItemCountMatchesCoefficients(t *testing.T) {
	var sb strings.Builder
	const n = 257
	for i := range n {
		sb.WriteString(strings.Repeat(" ", i%3))
		sb.WriteString("-0.001\n")
		if i%5 == 0 {
			sb.WriteString("\n")
		}
	}

	cfg := DefaultConfig()
	cfg.InputFile = testutil.WriteTempFile(t, "many.txt", sb.String())

	got, err := Convert(&cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "logic signed [15:0] fir_coeffs [0:256] = '{"))
	testutil.AssertHexItems(t, got, 16, 4, n)
}

func TestConvert_MalformedProducesNoOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputFile = testutil.WriteTempFile(t, "bad.txt", "0.5\nabc\n-0.5\n")

	got, err := Convert(&cfg)
	require.ErrorIs(t, err, ErrParse)
	assert.Empty(t, got)
}

func TestConvert_MissingInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputFile = filepath.Join(t.TempDir(), "nope.txt")

	got, err := Convert(&cfg)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, got)
}

func TestConvert_ConfigCheckedBeforeInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FracBits = cfg.TotalBits
	cfg.InputFile = filepath.Join(t.TempDir(), "nope.txt")

	got, err := Convert(&cfg)
	require.ErrorIs(t, err, ErrConfig)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Empty(t, got)
}

func TestConvertValues_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArrayName = "bad name"

	got, err := ConvertValues(&cfg, []float64{0.5})
	require.ErrorIs(t, err, ErrConfig)
	assert.Empty(t, got)
}
