// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for storage layout and numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options travel with a Matrix; every result inherits its (left) operand's options.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStorage is the backend used when no storage option is given.
	DefaultStorage = StorageFlat

	// DefaultOverflow is the overflow policy used when none is given.
	DefaultOverflow = OverflowCheck

	// DefaultMaxOrder bounds the order n of square matrices accepted by the
	// cofactor-expansion routines (Det, Cofactor, Adjugate, Inverse).
	// Laplace expansion costs O(n!); 10! ≈ 3.6e6 leaf terms.
	DefaultMaxOrder = 10
)

const panicMaxOrderInvalid = "matrix: WithMaxOrder: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved configuration of a Matrix.
// Fields are unexported; build it through NewMatrixOptions or pass ...Option
// to a constructor.
type Options struct {
	storage  StorageKind
	overflow OverflowPolicy
	maxOrder int
}

// Storage reports the selected storage backend.
func (o Options) Storage() StorageKind { return o.storage }

// Overflow reports the selected overflow policy.
func (o Options) Overflow() OverflowPolicy { return o.overflow }

// MaxOrder reports the cofactor-expansion order limit.
func (o Options) MaxOrder() int { return o.maxOrder }

// WithFlatStorage selects the contiguous []T backend (default).
func WithFlatStorage() Option {
	return func(o *Options) { o.storage = StorageFlat }
}

// WithSparseStorage selects the default-zero ordered-map backend.
// Memory is proportional to the number of non-zero cells.
func WithSparseStorage() Option {
	return func(o *Options) { o.storage = StorageSparse }
}

// WithOverflowCheck makes every add/sub/mul/div fail with ErrOverflow when the
// result does not fit in T (default).
func WithOverflowCheck() Option {
	return func(o *Options) { o.overflow = OverflowCheck }
}

// WithOverflowWrap accepts two's-complement wraparound on overflow.
func WithOverflowWrap() Option {
	return func(o *Options) { o.overflow = OverflowWrap }
}

// WithMaxOrder sets the largest square order accepted by Det, Cofactor,
// Adjugate and Inverse. Panics if n < 1.
func WithMaxOrder(n int) Option {
	if n < 1 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		storage:  DefaultStorage,
		overflow: DefaultOverflow,
		maxOrder: DefaultMaxOrder,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// nil setters are skipped so callers can pass conditional options.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
