package quantizer

// Convert runs the full pipeline for cfg: load, quantize, render.
//
// The configuration is validated before the input is opened. On any error
// the returned string is empty; there is no partial output.
func Convert(cfg *Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	coeffs, err := LoadCoefficients(cfg.InputFile)
	if err != nil {
		return "", err
	}

	return ConvertValues(cfg, coeffs)
}

// ConvertValues quantizes and renders coeffs already held in memory.
func ConvertValues(cfg *Config, coeffs []float64) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	return Render(QuantizeAll(cfg, coeffs), cfg.ArrayName, cfg.TotalBits), nil
}
