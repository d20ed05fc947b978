// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the unexported scalar kernels and storage backends to matrix_test ONLY.
//   - Compiled only by `go test` (the _test.go suffix keeps it out of production builds).

// CheckedAdd exposes arith.add under the checked policy.
func CheckedAdd[T Integer](a, b T) (T, error) { return arith[T]{}.add(a, b) }

// CheckedSub exposes arith.sub under the checked policy.
func CheckedSub[T Integer](a, b T) (T, error) { return arith[T]{}.sub(a, b) }

// CheckedMul exposes arith.mul under the checked policy.
func CheckedMul[T Integer](a, b T) (T, error) { return arith[T]{}.mul(a, b) }

// CheckedDiv exposes arith.div under the checked policy.
func CheckedDiv[T Integer](a, b T) (T, error) { return arith[T]{}.div(a, b) }

// CheckedNeg exposes arith.neg under the checked policy.
func CheckedNeg[T Integer](a T) (T, error) { return arith[T]{}.neg(a) }

// WrappingMul exposes arith.mul under the wrap policy.
func WrappingMul[T Integer](a, b T) (T, error) { return arith[T]{wrap: true}.mul(a, b) }

// StoreForTest is a thin handle over a private storage backend.
type StoreForTest[T Integer] struct{ s storage[T] }

// NewStoreForTest allocates a backend of the given kind with size cells.
func NewStoreForTest[T Integer](kind StorageKind, size int) StoreForTest[T] {
	return StoreForTest[T]{s: newStorage[T](kind, size)}
}

// Get reads the cell at key.
func (h StoreForTest[T]) Get(key int) T { return h.s.get(key) }

// Set writes v at key.
func (h StoreForTest[T]) Set(key int, v T) { h.s.set(key, v) }

// Clone returns an independent copy of the backend.
func (h StoreForTest[T]) Clone() StoreForTest[T] { return StoreForTest[T]{s: h.s.clone()} }

// NonZero counts non-zero cells.
func (h StoreForTest[T]) NonZero() int { return h.s.nonZero() }
