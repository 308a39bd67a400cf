package block

import (
	"fmt"
	"slices"
)

// Sample is the element type of an [Array]: real or complex floating point.
type Sample interface {
	float64 | complex128
}

// Array is an immutable, row-major, rectangular N-dimensional array.
//
// The zero rank array holds exactly one element (a scalar). For rank >= 1,
// axis 0 enumerates blocks.
type Array[T Sample] struct {
	shape []int
	data  []T
}

// NewArray builds an array of the given shape from row-major data.
// Both inputs are copied.
func NewArray[T Sample](shape []int, data []T) (*Array[T], error) {
	n := 1
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("block: %w: dimension %d is negative: %d", ErrShape, i, d)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("block: %w: shape %v needs %d elements, got %d", ErrShape, shape, n, len(data))
	}
	return &Array[T]{shape: slices.Clone(shape), data: slices.Clone(data)}, nil
}

// FromBlocks builds a rank-2 array of shape (len(blocks), n) from equal-length rows.
func FromBlocks[T Sample](blocks [][]T) (*Array[T], error) {
	n := 0
	if len(blocks) > 0 {
		n = len(blocks[0])
	}
	data := make([]T, 0, len(blocks)*n)
	for i, b := range blocks {
		if len(b) != n {
			return nil, fmt.Errorf("block: %w: block %d has length %d, want %d", ErrShape, i, len(b), n)
		}
		data = append(data, b...)
	}
	return &Array[T]{shape: []int{len(blocks), n}, data: data}, nil
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return len(a.shape) }

// Len returns the size of axis 0, or 0 for a scalar.
func (a *Array[T]) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Shape returns a copy of the dimensions.
func (a *Array[T]) Shape() []int { return slices.Clone(a.shape) }

// Size returns the total element count.
func (a *Array[T]) Size() int { return len(a.data) }

// Data returns a copy of the row-major elements.
func (a *Array[T]) Data() []T { return slices.Clone(a.data) }

// Block returns a copy of the flattened elements of block i.
func (a *Array[T]) Block(i int) []T {
	stride := a.stride()
	return slices.Clone(a.data[i*stride : (i+1)*stride])
}

// At returns the element at the given multi-index. It panics if the index
// count does not match the rank or an index is out of range, like slice indexing.
func (a *Array[T]) At(idx ...int) T {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("block: At expects %d indices, got %d", len(a.shape), len(idx)))
	}
	off := 0
	for i, k := range idx {
		if k < 0 || k >= a.shape[i] {
			panic(fmt.Sprintf("block: index %d out of range for axis %d of size %d", k, i, a.shape[i]))
		}
		off = off*a.shape[i] + k
	}
	return a.data[off]
}

// stride is the element count of one block (product of trailing dims).
func (a *Array[T]) stride() int {
	s := 1
	if len(a.shape) == 0 {
		return s
	}
	for _, d := range a.shape[1:] {
		s *= d
	}
	return s
}

// ToComplex converts an array whose last axis holds (I, Q) pairs into a
// complex array with that axis removed. A (nblocks, nsamples, 2) capture
// becomes (nblocks, nsamples).
func ToComplex(a *Array[float64]) (*Array[complex128], error) {
	if a == nil {
		return nil, fmt.Errorf("block: ToComplex: %w", ErrNotArray)
	}
	if a.Rank() < 1 {
		return nil, fmt.Errorf("block: ToComplex: %w", ErrRank)
	}
	if last := a.shape[len(a.shape)-1]; last != 2 {
		return nil, fmt.Errorf("block: ToComplex: %w: last axis must have size 2, got %d", ErrShape, last)
	}
	out := make([]complex128, len(a.data)/2)
	for i := range out {
		out[i] = complex(a.data[2*i], a.data[2*i+1])
	}
	return &Array[complex128]{shape: slices.Clone(a.shape[:len(a.shape)-1]), data: out}, nil
}
