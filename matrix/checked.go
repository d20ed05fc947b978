// SPDX-License-Identifier: MIT

// Package matrix - overflow-aware scalar kernels.
//
// Every arithmetic step of the package (sums, products, cofactor signs,
// adjugate division) goes through an arith value bound to the matrix's
// OverflowPolicy. Under OverflowCheck a result that does not fit in T yields
// ErrOverflow; under OverflowWrap the native two's-complement result is kept.
//
// The checks rely only on the wrapped result, so they work for every signed
// width without knowing min/max of T.
package matrix

// arith performs scalar arithmetic on T under a fixed overflow policy.
type arith[T Integer] struct {
	wrap bool
}

// arithFor returns the scalar kernel matching the options' overflow policy.
func arithFor[T Integer](o Options) arith[T] {
	return arith[T]{wrap: o.overflow == OverflowWrap}
}

// add returns a+b.
func (ar arith[T]) add(a, b T) (T, error) {
	s := a + b
	if !ar.wrap && ((b > 0 && s < a) || (b < 0 && s > a)) {
		return 0, ErrOverflow
	}

	return s, nil
}

// sub returns a-b.
func (ar arith[T]) sub(a, b T) (T, error) {
	d := a - b
	if !ar.wrap && ((b > 0 && d > a) || (b < 0 && d < a)) {
		return 0, ErrOverflow
	}

	return d, nil
}

// mul returns a*b.
// MinInt * -1 wraps back to MinInt and MinInt / -1 == MinInt in Go, so the
// quotient test alone misses it; the sign test covers that case.
func (ar arith[T]) mul(a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if !ar.wrap && (p/b != a || (b == -1 && a < 0 && p < 0)) {
		return 0, ErrOverflow
	}

	return p, nil
}

// div returns a/b truncated toward zero. b must be non-zero (callers guarantee it).
// The only overflowing case is MinInt / -1.
func (ar arith[T]) div(a, b T) (T, error) {
	q := a / b
	if !ar.wrap && b == -1 && a < 0 && q < 0 {
		return 0, ErrOverflow
	}

	return q, nil
}

// neg returns -a.
func (ar arith[T]) neg(a T) (T, error) { return ar.sub(0, a) }
