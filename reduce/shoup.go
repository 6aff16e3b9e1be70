package reduce

import "math/bits"

// ShoupFactor precomputes quotient = floor(value*beta/p) for a fixed
// value < p, enabling a single-multiply-and-correct reduction of
// value*x mod p for any x < p. Grounded on
// original_source/algebra/src/modulus/shoup/internal_macros.rs.
type ShoupFactor[T Word] struct {
	value    T
	quotient T
}

// NewShoupFactor builds a ShoupFactor for value under modulus p.
// Precondition: value < p.
func NewShoupFactor[T Word](value, p T) ShoupFactor[T] {
	w := bitWidth[T]()
	if w < 64 {
		q := (uint64(value) << w) / uint64(p)
		return ShoupFactor[T]{value: value, quotient: T(q)}
	}
	q, _ := bits.Div64(uint64(value), 0, uint64(p))
	return ShoupFactor[T]{value: value, quotient: T(q)}
}

// Value returns the shoup factor's stored value.
func (s ShoupFactor[T]) Value() T { return s.value }

// Quotient returns the precomputed quotient floor(value*beta/p).
func (s ShoupFactor[T]) Quotient() T { return s.quotient }

// MulReduceLazy computes value*x mod p, lazily (result in [0, 2p)),
// for x < p, via q = high(quotient*x); r = value*x - q*p (wrapping).
func (s ShoupFactor[T]) MulReduceLazy(x T, p T) T {
	w := bitWidth[T]()
	if w < 64 {
		mask := uint64(1)<<w - 1
		hw := (uint64(s.quotient) * uint64(x)) >> w
		return T((uint64(s.value)*uint64(x) - hw*uint64(p)) & mask)
	}
	hw, _ := bits.Mul64(uint64(s.quotient), uint64(x))
	return T(uint64(s.value)*uint64(x) - hw*uint64(p))
}

// MulReduce computes the canonical value*x mod p.
func (s ShoupFactor[T]) MulReduce(x T, p T) T {
	r := s.MulReduceLazy(x, p)
	if r >= p {
		r -= p
	}
	return r
}
