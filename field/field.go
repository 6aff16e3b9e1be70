// Package field implements a generic prime-field element type,
// parameterized at instantiation time by a Modulus type, following
// spec.md §9's suggested replacement for code-generated operator
// surfaces: a single generic element type dispatching into the
// reduce package's Barrett layer.
package field

import (
	"reflect"
	"sync"

	"github.com/pado-labs/threshold-zk-lhe/reduce"
)

// Modulus names a fixed prime at the type level. Implementations are
// expected to be zero-size marker types (see CipherModulus,
// PlainModulus) so that Element[M] costs nothing beyond its
// uint64 payload.
type Modulus interface {
	P() uint64
}

var modulusCache sync.Map // map[reflect.Type]reduce.BarrettModulus[uint64]

func barrettFor[M Modulus]() reduce.BarrettModulus[uint64] {
	var m M
	t := reflect.TypeOf(m)
	if v, ok := modulusCache.Load(t); ok {
		return v.(reduce.BarrettModulus[uint64])
	}
	bm, err := reduce.NewBarrettModulus[uint64](m.P())
	if err != nil {
		panic(err)
	}
	actual, _ := modulusCache.LoadOrStore(t, bm)
	return actual.(reduce.BarrettModulus[uint64])
}

// Element is a canonical representative in [0, p) of the prime field
// F_p named by M. "Fast" methods may return values in [0, 2p); callers
// must normalize (via Norm) before comparing fast results or mixing
// them with canonical ones.
type Element[M Modulus] struct {
	v uint64
}

// New builds a canonically-reduced Element from any uint64.
func New[M Modulus](v uint64) Element[M] {
	return Element[M]{v: barrettFor[M]().Reduce(v)}
}

// NewUnchecked wraps v without reducing; callers must guarantee
// v < p. Used by hot paths (NTT butterflies) that already maintain the
// invariant.
func NewUnchecked[M Modulus](v uint64) Element[M] { return Element[M]{v: v} }

// Get returns the raw stored representative (possibly in [0, 2p) for a
// value produced by a fast operation).
func (e Element[M]) Get() uint64 { return e.v }

// Modulus returns p for this field instantiation.
func Modulus_[M Modulus]() uint64 {
	var m M
	return m.P()
}

// Zero, One, NegOne are the additive/multiplicative identities and -1.
func Zero[M Modulus]() Element[M] { return Element[M]{v: 0} }
func One[M Modulus]() Element[M]  { return Element[M]{v: 1} }
func NegOne[M Modulus]() Element[M] {
	p := Modulus_[M]()
	return Element[M]{v: p - 1}
}

// TwiceModulus returns 2p, the bound on lazily-reduced ("fast")
// intermediate values used throughout the NTT butterflies.
func TwiceModulus[M Modulus]() uint64 { return 2 * Modulus_[M]() }

// QDiv8 and NegQDiv8 are the constants named in the data model
// (floor(p/8) and p - floor(p/8)), used by symmetric-representative
// rounding in BFV encrypt/decrypt.
func QDiv8[M Modulus]() uint64 { return Modulus_[M]() / 8 }
func NegQDiv8[M Modulus]() uint64 {
	p := Modulus_[M]()
	return p - p/8
}

// Norm reduces a possibly-lazy value back into the canonical range.
func (e Element[M]) Norm() Element[M] {
	p := Modulus_[M]()
	v := e.v
	if v >= 2*p {
		v -= 2 * p
	}
	if v >= p {
		v -= p
	}
	return Element[M]{v: v}
}

// Add returns the canonical sum.
func (e Element[M]) Add(o Element[M]) Element[M] {
	return Element[M]{v: e.v + o.v}.Norm()
}

// AddFast returns a < 2p sum without the final reduction.
func (e Element[M]) AddFast(o Element[M]) Element[M] {
	p := Modulus_[M]()
	r := e.v + o.v
	if r >= 2*p {
		r -= 2 * p
	}
	return Element[M]{v: r}
}

// Sub returns the canonical difference.
func (e Element[M]) Sub(o Element[M]) Element[M] {
	p := Modulus_[M]()
	return Element[M]{v: e.v + 2*p - o.v}.Norm()
}

// Neg returns the canonical negation.
func (e Element[M]) Neg() Element[M] {
	p := Modulus_[M]()
	if e.v == 0 {
		return Element[M]{v: 0}
	}
	return Element[M]{v: p - e.v}
}

// Mul returns the canonical product, routed through the Barrett layer.
func (e Element[M]) Mul(o Element[M]) Element[M] {
	lo, hi := reduce.WidenMul(e.v, o.v)
	return Element[M]{v: barrettFor[M]().ReduceWide(lo, hi)}
}

// MulScalar multiplies by a raw uint64 scalar already known to be in
// range [0, p).
func (e Element[M]) MulScalar(s uint64) Element[M] {
	return e.Mul(Element[M]{v: s})
}

// AddMul computes e + a*b (fused), canonical.
func (e Element[M]) AddMul(a, b Element[M]) Element[M] {
	return e.Add(a.Mul(b))
}

// AddMulFast computes e + a*b without the final normalization.
func (e Element[M]) AddMulFast(a, b Element[M]) Element[M] {
	lo, hi := reduce.WidenMul(a.v, b.v)
	prod := barrettFor[M]().ReduceWide(lo, hi)
	return e.AddFast(Element[M]{v: prod})
}

// Pow computes e^exp via the reduce package's square-and-multiply.
func (e Element[M]) Pow(exp uint64) Element[M] {
	return Element[M]{v: reduce.PowReduce(e.v, exp, barrettFor[M]())}
}

// Inv returns the canonical multiplicative inverse, or
// reduce.ErrNoInverse if e is zero (not coprime to p).
func (e Element[M]) Inv() (Element[M], error) {
	r, err := reduce.InvReduce(e.v, barrettFor[M]())
	if err != nil {
		return Element[M]{}, err
	}
	return Element[M]{v: r}, nil
}

// Equal compares two canonical elements.
func (e Element[M]) Equal(o Element[M]) bool { return e.v == o.v }

// IsZero reports whether e is the additive identity.
func (e Element[M]) IsZero() bool { return e.v == 0 }
