package spectrum

import "fmt"

// BinFrequencies returns the center frequency of each DFT bin for an n-point
// transform at sampleRate, in the DFT's natural order: 0, df, ..., then the
// negative frequencies. For even n the Nyquist bin is reported as -fs/2.
func BinFrequencies(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: BinFrequencies: %w", ErrEmptyInput)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: BinFrequencies: sample rate must be > 0: %f", sampleRate)
	}
	df := sampleRate / float64(n)
	out := make([]float64, n)
	half := (n - 1) / 2
	for k := range out {
		if k <= half {
			out[k] = float64(k) * df
		} else {
			out[k] = float64(k-n) * df
		}
	}
	return out, nil
}

// Shift reorders DFT-ordered values so that the zero-frequency bin is centered.
// The input is not modified.
func Shift[T any](x []T) []T {
	n := len(x)
	out := make([]T, 0, n)
	half := (n + 1) / 2
	out = append(out, x[half:]...)
	return append(out, x[:half]...)
}
