package wfc

import "math/rand/v2"

// RNG supplies uniform floats in [0,1) to the observer: once to break ties
// among minimal-entropy cells, once per step to weight-sample a pattern.
// The core never reads any other source of randomness and never reseeds a
// caller-supplied RNG itself, so a seeded implementation makes a run
// reproducible.
type RNG interface {
	Float64() float64
}

type pcgRNG struct {
	r *rand.Rand
}

// NewDefaultRNG returns an RNG seeded deterministically from seed1/seed2,
// backed by math/rand/v2's PCG source.
func NewDefaultRNG(seed1, seed2 uint64) RNG {
	return pcgRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (p pcgRNG) Float64() float64 {
	return p.r.Float64()
}

// Allocator routes the wave, overlap-table and collapse-tracking arrays
// through caller-supplied factories, so a caller generating many states
// back-to-back may substitute a pooling allocator. The pattern list and the
// pending-queue buffer are not routed through it; they are allocated with
// the built-in append and make. There is no paired Free method: the Go garbage
// collector reclaims these slices once a State (or its Clone) becomes
// unreachable.
type Allocator interface {
	Int32s(n int) []int32
	Uint64s(n int) []uint64
	Float32s(n int) []float32
	Bools(n int) []bool
}

type defaultAllocator struct{}

func (defaultAllocator) Int32s(n int) []int32     { return make([]int32, n) }
func (defaultAllocator) Uint64s(n int) []uint64   { return make([]uint64, n) }
func (defaultAllocator) Float32s(n int) []float32 { return make([]float32, n) }
func (defaultAllocator) Bools(n int) []bool       { return make([]bool, n) }

// Hooks groups the injected dependencies a State is built with, plus an
// opaque caller context value threaded alongside them (never interpreted
// by the core itself).
type Hooks struct {
	RNG       RNG
	Allocator Allocator
	Context   any
}

func (h Hooks) withDefaults() Hooks {
	if h.Allocator == nil {
		h.Allocator = defaultAllocator{}
	}
	return h
}
