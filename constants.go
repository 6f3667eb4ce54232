package quantizer

// Default configuration values (Q1.15, 16-bit SystemVerilog array)
const (
	DefaultInputFile = "fir_coefficients.txt"
	DefaultArrayName = "fir_coeffs"
	DefaultTotalBits = 16
	DefaultFracBits  = 15
)

// Bit width limits
const (
	minTotalBits = 2  // sign bit plus at least one magnitude bit
	maxTotalBits = 32 // widest coefficient the array literal is rendered for
	minFracBits  = 0
)

// Rendering constants
const (
	hexDigitBits   = 4 // bits per hex digit
	itemSeparator  = ", "
	literalOpen    = "'{"
	literalClose   = "};"
	wavExtension   = ".wav"
	maxLineLength  = 1024 * 1024 // scanner limit for a single coefficient line
	initialLineBuf = 64 * 1024
)
