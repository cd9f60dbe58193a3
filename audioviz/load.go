// Package audioviz turns raw unsigned 8-bit mono audio dumps into
// waveform plots and WAV files.
package audioviz

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrEmpty = errors.New("no samples")

// Load reads a whole dump. Each byte is one sample.
func Load(path string) ([]byte, error) {
	samples, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dump '%s': %w", path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("dump '%s': %w", path, ErrEmpty)
	}
	return samples, nil
}

// Capture reads exactly n samples from r.
func Capture(r io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	samples := make([]byte, n)
	got, err := io.ReadFull(r, samples)
	if err != nil {
		return samples[:got], fmt.Errorf("captured %d of %d samples: %w", got, n, err)
	}
	return samples, nil
}

// Centered maps an unsigned sample onto [-1, 1).
func Centered(b byte) float32 {
	return (float32(b) - 128) / 128
}
