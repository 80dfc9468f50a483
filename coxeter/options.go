// SPDX-License-Identifier: MIT

// Package coxeter: functional configuration for CartanMatrix and Random.
//   - Option / config (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package coxeter

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinIndex imposes no extra divisor on the cyclotomic index.
	DefaultMinIndex = 1

	// DefaultMaxIndex disables the index bound.
	DefaultMaxIndex = 0
)

// maxOrders is the longest order list Random can draw from with one byte.
const maxOrders = 256

// DefaultOrders are the candidate off-diagonal orders drawn by Random.
var DefaultOrders = []int{Infinite, 2, 3, 4, 5, 6}

// ---------- Internal panic messages ----------

const (
	panicMinIndexInvalid = "coxeter: WithMinIndex: n must be >= 1"
	panicMaxIndexInvalid = "coxeter: WithMaxIndex: n must be >= 2"
	panicSeedEmpty       = "coxeter: WithSeed: seed must be non-empty"
	panicOrdersInvalid   = "coxeter: WithOrders: orders must be non-empty with each value 0 or >= 2"
	panicOrdersTooMany   = "coxeter: WithOrders: at most 256 orders"
)

// Option configures CartanMatrix and Random. Each function reads only
// its own options and ignores the rest:
//
//	CartanMatrix: WithMinIndex, WithMaxIndex
//	Random:       WithSeed, WithOrders
type Option func(*config)

type config struct {
	minIndex int    // field index must be a multiple of minIndex
	maxIndex int    // 0 disables the bound
	seed     []byte // nil unless WithSeed was applied
	orders   []int  // Random's candidate orders
}

func gatherOptions(opts ...Option) config {
	cfg := config{
		minIndex: DefaultMinIndex,
		maxIndex: DefaultMaxIndex,
		orders:   DefaultOrders,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMinIndex forces the chosen cyclotomic index to be a multiple of n.
// Read by CartanMatrix.
// Use it to build Cartan matrices of different diagrams over one common
// field so that their matrices can be multiplied together.
func WithMinIndex(n int) Option {
	if n < 1 {
		panic(panicMinIndexInvalid)
	}

	return func(c *config) { c.minIndex = n }
}

// WithMaxIndex bounds the cyclotomic index; CartanMatrix fails with
// ErrIndexTooLarge when the input requires a larger one.
// Read by CartanMatrix.
func WithMaxIndex(n int) Option {
	if n < 2 {
		panic(panicMaxIndexInvalid)
	}

	return func(c *config) { c.maxIndex = n }
}

// WithSeed keys the PRNG behind Random; equal seeds give equal matrices.
// Read by Random.
func WithSeed(seed []byte) Option {
	if len(seed) == 0 {
		panic(panicSeedEmpty)
	}
	cp := append([]byte(nil), seed...)

	return func(c *config) { c.seed = cp }
}

// WithOrders sets the candidate off-diagonal orders drawn by Random, at
// most 256 of them. Read by Random.
func WithOrders(orders ...int) Option {
	if len(orders) == 0 {
		panic(panicOrdersInvalid)
	}
	if len(orders) > maxOrders {
		panic(panicOrdersTooMany)
	}
	for _, o := range orders {
		if o < 0 || o == 1 {
			panic(panicOrdersInvalid)
		}
	}
	cp := append([]int(nil), orders...)

	return func(c *config) { c.orders = cp }
}
