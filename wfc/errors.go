// Package wfc implements the overlapping-model Wave Function Collapse
// algorithm: extract NxN patterns from a source image, build their
// adjacency (overlap) relation, then synthesize a larger image by
// repeatedly collapsing the lowest-entropy wave point and propagating the
// resulting constraints with arc consistency until every point holds
// exactly one pattern or a contradiction is reached.
package wfc

import "errors"

var (
	// ErrInvalidN is returned when N is not a positive integer not exceeding
	// the smaller of the source and destination extents.
	ErrInvalidN = errors.New("wfc: N must be positive and no larger than the smallest source or destination extent")
	// ErrInvalidCellSize is returned when the configured cell size (B) is not positive.
	ErrInvalidCellSize = errors.New("wfc: cell size must be positive")
	// ErrInvalidExtents is returned when a width or height is not positive.
	ErrInvalidExtents = errors.New("wfc: width and height must be positive")
	// ErrNilPixels is returned when a required pixel buffer is nil or the wrong length.
	ErrNilPixels = errors.New("wfc: pixel buffer is nil or does not match width*height*cellSize")
	// ErrKeepRequiresSeed is returned when Config.Keep is set without Config.Seed.
	ErrKeepRequiresSeed = errors.New("wfc: Config.Keep requires Config.Seed to be set")
	// ErrInvalidKeepShape is returned when Config.Keep's length does not match the destination shape.
	ErrInvalidKeepShape = errors.New("wfc: Config.Keep must have exactly destWidth*destHeight entries")
	// ErrNotCompleted is returned by Blit when the state has not reached StatusCompleted.
	ErrNotCompleted = errors.New("wfc: state has not reached StatusCompleted")
	// ErrIndexOutOfRange is returned by introspection queries given an out-of-range pattern or coordinate.
	ErrIndexOutOfRange = errors.New("wfc: index out of range")
	// ErrNilRNG is returned when Hooks.RNG is nil; no default RNG is substituted.
	ErrNilRNG = errors.New("wfc: Hooks.RNG must not be nil")
)
