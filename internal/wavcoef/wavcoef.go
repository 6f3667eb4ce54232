// Package wavcoef reads and writes FIR taps stored as mono PCM WAV impulse responses.
package wavcoef

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// Samples decoded per PCMBuffer call
	readChunkSize = 4096

	monoChannels = 1
	pcmFormat    = 1 // WAVE_FORMAT_PCM

	// Supported PCM bit depths (8-bit PCM is unsigned and not accepted)
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// DefaultSampleRate is written when the caller does not care about the rate.
	DefaultSampleRate = 48000
)

// ErrInvalidWAV indicates the input is not a mono integer-PCM WAV file.
var ErrInvalidWAV = errors.New("invalid WAV impulse response")

// Load decodes the impulse response at path.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read decodes a mono PCM WAV stream into taps normalized by 2^(bitDepth-1),
// so full scale maps onto [-1, 1).
func Read(r io.ReadSeeker) ([]float64, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrInvalidWAV)
	}
	if decoder.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: audio format %d is not integer PCM", ErrInvalidWAV, decoder.WavAudioFormat)
	}

	format := decoder.Format()
	if format.NumChannels != monoChannels {
		return nil, fmt.Errorf("%w: %d channels (want mono)", ErrInvalidWAV, format.NumChannels)
	}

	bitDepth := int(decoder.BitDepth)
	if !supportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidWAV, bitDepth)
	}
	scale := math.Ldexp(1, -(bitDepth - 1))

	buf := &audio.IntBuffer{
		Data:   make([]int, readChunkSize),
		Format: format,
	}

	var taps []float64
	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}
		for _, s := range buf.Data[:n] {
			taps = append(taps, float64(s)*scale)
		}
	}

	return taps, nil
}

// Write stores taps as a mono PCM WAV impulse response. Taps are scaled by
// 2^(bitDepth-1), rounded and clamped to the PCM range.
func Write(path string, taps []float64, sampleRate, bitDepth int) (err error) {
	if !supportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidWAV, bitDepth)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Data:           toPCM(taps, bitDepth),
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	// Close patches the RIFF sizes; the file itself is closed by the defer.
	return encoder.Close()
}

func toPCM(taps []float64, bitDepth int) []int {
	fullScale := math.Ldexp(1, bitDepth-1)
	maxVal := fullScale - 1
	minVal := -fullScale

	out := make([]int, len(taps))
	for i, t := range taps {
		v := math.Round(t * fullScale)
		if v > maxVal {
			v = maxVal
		} else if v < minVal {
			v = minVal
		}
		out[i] = int(v)
	}
	return out
}

func supportedBitDepth(bitDepth int) bool {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return true
	default:
		return false
	}
}
