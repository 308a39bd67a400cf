package block

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// DropFirst returns all blocks except block 0, keeping the rank.
//
// The first block of a capture is typically a stale warm-up buffer. At least
// two blocks are required so that the result is non-empty.
func DropFirst[T Sample](a *Array[T]) (*Array[T], error) {
	if err := checkBlocks("DropFirst", a); err != nil {
		return nil, err
	}
	if a.shape[0] < 2 {
		return nil, fmt.Errorf("block: DropFirst: %w: need at least 2 blocks to drop the first one, got %d",
			ErrTooFewBlocks, a.shape[0])
	}
	shape := slices.Clone(a.shape)
	shape[0]--
	return &Array[T]{shape: shape, data: slices.Clone(a.data[a.stride():])}, nil
}

// Mean returns the elementwise arithmetic mean across axis 0.
// The result has shape a.Shape()[1:]. A single block is returned unchanged.
func Mean[T Sample](a *Array[T]) (*Array[T], error) {
	if err := checkReducible("Mean", a); err != nil {
		return nil, err
	}
	n, stride := a.shape[0], a.stride()
	out := make([]T, stride)
	switch src := any(a.data).(type) {
	case []float64:
		meanReal(any(out).([]float64), src, n, stride)
	case []complex128:
		meanComplex(any(out).([]complex128), src, n, stride)
	}
	return &Array[T]{shape: slices.Clone(a.shape[1:]), data: out}, nil
}

// Median returns the elementwise median across axis 0.
//
// For an even block count the two middle values are averaged. A column that
// contains NaN yields NaN. Complex samples are ordered by real part, then by
// imaginary part.
func Median[T Sample](a *Array[T]) (*Array[T], error) {
	if err := checkReducible("Median", a); err != nil {
		return nil, err
	}
	n, stride := a.shape[0], a.stride()
	out := make([]T, stride)
	col := make([]T, n)
	for j := range stride {
		for b := range n {
			col[b] = a.data[b*stride+j]
		}
		out[j] = medianOf(col)
	}
	return &Array[T]{shape: slices.Clone(a.shape[1:]), data: out}, nil
}

func checkBlocks[T Sample](op string, a *Array[T]) error {
	if a == nil {
		return fmt.Errorf("block: %s: %w", op, ErrNotArray)
	}
	if a.Rank() < 1 {
		return fmt.Errorf("block: %s: %w", op, ErrRank)
	}
	return nil
}

func checkReducible[T Sample](op string, a *Array[T]) error {
	if err := checkBlocks(op, a); err != nil {
		return err
	}
	if a.shape[0] < 1 {
		return fmt.Errorf("block: %s: %w: need at least 1 block, got 0", op, ErrTooFewBlocks)
	}
	return nil
}

func meanReal(dst, src []float64, n, stride int) {
	copy(dst, src[:stride])
	for b := 1; b < n; b++ {
		floats.Add(dst, src[b*stride:(b+1)*stride])
	}
	if n > 1 {
		inv := float64(n)
		for i := range dst {
			dst[i] /= inv
		}
	}
}

func meanComplex(dst, src []complex128, n, stride int) {
	re := make([]float64, len(src))
	im := make([]float64, len(src))
	for i, v := range src {
		re[i] = real(v)
		im[i] = imag(v)
	}
	mre := make([]float64, stride)
	mim := make([]float64, stride)
	meanReal(mre, re, n, stride)
	meanReal(mim, im, n, stride)
	for i := range dst {
		dst[i] = complex(mre[i], mim[i])
	}
}

// medianOf sorts col in place.
func medianOf[T Sample](col []T) T {
	for _, v := range col {
		if isNaN(v) {
			return v
		}
	}
	slices.SortFunc(col, compare[T])
	mid := len(col) / 2
	if len(col)%2 == 1 {
		return col[mid]
	}
	return (col[mid-1] + col[mid]) / 2
}

func isNaN[T Sample](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return math.IsNaN(x)
	case complex128:
		return math.IsNaN(real(x)) || math.IsNaN(imag(x))
	}
	return false
}

func compare[T Sample](a, b T) int {
	switch x := any(a).(type) {
	case float64:
		return cmp.Compare(x, any(b).(float64))
	case complex128:
		y := any(b).(complex128)
		if c := cmp.Compare(real(x), real(y)); c != 0 {
			return c
		}
		return cmp.Compare(imag(x), imag(y))
	}
	return 0
}
