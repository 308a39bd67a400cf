package spectrum

import "errors"

var (
	// ErrEmptyInput is returned when a transform receives no samples.
	ErrEmptyInput = errors.New("empty input")
	// ErrNotArray is returned when a nil array is passed to a batched transform.
	ErrNotArray = errors.New("data must be a non-nil array")
	// ErrRank is returned when a batched transform receives a scalar array.
	ErrRank = errors.New("array must have at least 1 dimension")
)
