// Package reduce implements the modular-arithmetic layer: widening
// integer primitives and the Barrett, power-of-two, and Shoup modular
// reduction strategies over unsigned machine words.
package reduce

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is any unsigned integer width this package knows how to reduce.
type Word interface {
	constraints.Unsigned
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitWidth returns the bit width of T via a zero-value type switch,
// avoiding unsafe while still giving a compile-time-resolved constant
// per instantiation.
func bitWidth[T Word]() uint {
	var z T
	switch any(z).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// WidenMul computes the full double-width product a*b, split into the
// low and high halves (each still represented as a T).
func WidenMul[T Word](a, b T) (lo, hi T) {
	w := bitWidth[T]()
	if w < 64 {
		p := uint64(a) * uint64(b)
		mask := (uint64(1) << w) - 1
		return T(p & mask), T(p >> w)
	}
	hi64, lo64 := bits.Mul64(uint64(a), uint64(b))
	return T(lo64), T(hi64)
}

// CarryMul computes a*b + c without loss, returning (low, high).
func CarryMul[T Word](a, b, c T) (lo, hi T) {
	w := bitWidth[T]()
	if w < 64 {
		p := uint64(a)*uint64(b) + uint64(c)
		mask := (uint64(1) << w) - 1
		return T(p & mask), T(p >> w)
	}
	hi64, lo64 := bits.Mul64(uint64(a), uint64(b))
	var carry uint64
	lo64, carry = bits.Add64(lo64, uint64(c), 0)
	hi64 += carry
	return T(lo64), T(hi64)
}

// CarryAdd computes a+b+carryIn as a ternary add, returning the sum and
// the outgoing carry flag.
func CarryAdd[T Word](a, b T, carryIn bool) (sum T, carryOut bool) {
	w := bitWidth[T]()
	var cin uint64
	if carryIn {
		cin = 1
	}
	if w < 64 {
		s := uint64(a) + uint64(b) + cin
		mask := (uint64(1) << w) - 1
		return T(s & mask), s > mask
	}
	s, c := bits.Add64(uint64(a), uint64(b), cin)
	return T(s), c != 0
}

// BorrowSub computes a-b-borrowIn as a ternary subtract, returning the
// difference and the outgoing borrow flag.
func BorrowSub[T Word](a, b T, borrowIn bool) (diff T, borrowOut bool) {
	w := bitWidth[T]()
	var bin uint64
	if borrowIn {
		bin = 1
	}
	if w < 64 {
		mask := (uint64(1) << w) - 1
		ua, ub := uint64(a), uint64(b)+bin
		if ua >= ub {
			return T((ua - ub) & mask), false
		}
		return T(((uint64(1) << w) + ua - ub) & mask), true
	}
	d, borrow := bits.Sub64(uint64(a), uint64(b), bin)
	return T(d), borrow != 0
}
