package block

import "errors"

var (
	// ErrNotArray is returned when a nil array is passed where sample data is required.
	ErrNotArray = errors.New("data must be a non-nil array")
	// ErrRank is returned when an array has too few dimensions for the operation.
	ErrRank = errors.New("array must have at least 1 dimension")
	// ErrTooFewBlocks is returned when axis 0 holds fewer blocks than required.
	ErrTooFewBlocks = errors.New("too few blocks")
	// ErrShape is returned for invalid shapes or data/shape length mismatches.
	ErrShape = errors.New("invalid shape")
)
