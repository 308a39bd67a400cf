// Package block provides a small N-dimensional sample container and reducers
// over its leading axis.
//
// Axis 0 of an [Array] enumerates repeated measurement blocks, as produced by
// a capture that records nblocks buffers of nsamples each. All remaining axes
// form a fixed per-block shape. The reducers drop the warm-up block or
// collapse axis 0 with an elementwise mean or median, preserving the trailing
// shape.
//
// Arrays are never mutated by this package. Every operation returns a new
// array backed by freshly allocated storage.
package block
