package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// minPlanSize is the smallest power-of-two length handed to algo-fft.
const minPlanSize = 8

// forwardFunc writes the forward DFT of src into dst. Both have the planned length.
type forwardFunc func(dst, src []complex128) error

// newForward returns a forward transform for length n.
func newForward(n int) (forwardFunc, error) {
	switch {
	case n <= 0:
		return nil, ErrEmptyInput
	case n == 1:
		return func(dst, src []complex128) error {
			dst[0] = src[0]
			return nil
		}, nil
	case n >= minPlanSize && isPowerOf2(n):
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("failed to create FFT plan: %w", err)
		}
		return plan.Forward, nil
	default:
		fft := fourier.NewCmplxFFT(n)
		return func(dst, src []complex128) error {
			fft.Coefficients(dst, src)
			return nil
		}, nil
	}
}

// Voltage returns the complex DFT of x with the same length as x.
// No 1/N scaling is applied.
func Voltage(x []complex128) ([]complex128, error) {
	forward, err := newForward(len(x))
	if err != nil {
		return nil, fmt.Errorf("spectrum: Voltage: %w", err)
	}
	out := make([]complex128, len(x))
	if err := forward(out, x); err != nil {
		return nil, fmt.Errorf("spectrum: Voltage: %w", err)
	}
	return out, nil
}

// VoltageReal returns the complex DFT of a real sequence.
// The full N-point spectrum is returned, including the conjugate-symmetric half.
func VoltageReal(x []float64) ([]complex128, error) {
	return Voltage(realToComplex(x))
}

// Power returns |X[k]|^2 for the DFT X of x.
//
// The transform is recomputed on every call; Power never reuses a result of
// [Voltage]. Values are non-negative by construction.
func Power(x []complex128) ([]float64, error) {
	bins, err := Voltage(x)
	if err != nil {
		return nil, err
	}
	return BinPower(bins), nil
}

// PowerReal returns the power spectrum of a real sequence.
func PowerReal(x []float64) ([]float64, error) {
	return Power(realToComplex(x))
}

// VoltageMagnitude returns |X[k]| for the DFT X of x.
func VoltageMagnitude(x []complex128) ([]float64, error) {
	bins, err := Voltage(x)
	if err != nil {
		return nil, err
	}
	return BinMagnitude(bins), nil
}

func realToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
