package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-radiolab/dsp/block"
)

// VoltageArray transforms every row along the last axis of a and keeps its shape.
// A capture of shape (nblocks, nsamples) yields one spectrum per block.
func VoltageArray[T block.Sample](a *block.Array[T]) (*block.Array[complex128], error) {
	shape, bins, err := transformRows("VoltageArray", a)
	if err != nil {
		return nil, err
	}
	return block.NewArray(shape, bins)
}

// PowerArray is the batched form of [Power].
func PowerArray[T block.Sample](a *block.Array[T]) (*block.Array[float64], error) {
	shape, bins, err := transformRows("PowerArray", a)
	if err != nil {
		return nil, err
	}
	return block.NewArray(shape, BinPower(bins))
}

func transformRows[T block.Sample](op string, a *block.Array[T]) ([]int, []complex128, error) {
	if a == nil {
		return nil, nil, fmt.Errorf("spectrum: %s: %w", op, ErrNotArray)
	}
	if a.Rank() < 1 {
		return nil, nil, fmt.Errorf("spectrum: %s: %w", op, ErrRank)
	}
	shape := a.Shape()
	n := shape[len(shape)-1]
	forward, err := newForward(n)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: %s: %w", op, err)
	}

	in := samplesToComplex(a.Data())
	out := make([]complex128, len(in))
	for off := 0; off < len(in); off += n {
		if err := forward(out[off:off+n], in[off:off+n]); err != nil {
			return nil, nil, fmt.Errorf("spectrum: %s: %w", op, err)
		}
	}
	return shape, out, nil
}

func samplesToComplex[T block.Sample](data []T) []complex128 {
	switch d := any(data).(type) {
	case []complex128:
		return d
	case []float64:
		return realToComplex(d)
	}
	return nil
}
