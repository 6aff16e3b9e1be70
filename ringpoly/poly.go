// Package ringpoly implements dense polynomials over R_q = Z_q[X]/(X^N+1)
// in coefficient representation, with ring multiplication routed
// through the ntt package. There is no separate evaluation-form
// polynomial type: Mul transforms copies of its operands internally
// and returns a coefficient-form result. Grounded on
// ring/poly.go's Poly/NewPoly/Copy/Zero shape, generalized from its
// multi-modulus Buff/Coeffs layout down to this module's single
// modulus per field.Modulus instantiation.
package ringpoly

import (
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/ntt"
)

// Poly holds N coefficients of R_q, in coefficient representation.
type Poly[M field.Modulus] struct {
	Coeffs []field.Element[M]
}

// NewPoly allocates a zero polynomial of degree < n.
func NewPoly[M field.Modulus](n int) *Poly[M] {
	return &Poly[M]{Coeffs: make([]field.Element[M], n)}
}

// NewPolyFromCoeffs wraps an existing coefficient slice.
func NewPolyFromCoeffs[M field.Modulus](c []field.Element[M]) *Poly[M] {
	return &Poly[M]{Coeffs: c}
}

func (p *Poly[M]) N() int { return len(p.Coeffs) }

// Zero clears all coefficients.
func (p *Poly[M]) Zero() {
	for i := range p.Coeffs {
		p.Coeffs[i] = field.Zero[M]()
	}
}

// CopyNew returns an independent copy.
func (p *Poly[M]) CopyNew() *Poly[M] {
	c := make([]field.Element[M], len(p.Coeffs))
	copy(c, p.Coeffs)
	return &Poly[M]{Coeffs: c}
}

// Add computes p + q coefficient-wise into a new polynomial.
func (p *Poly[M]) Add(q *Poly[M]) *Poly[M] {
	out := NewPoly[M](p.N())
	for i := range out.Coeffs {
		out.Coeffs[i] = p.Coeffs[i].Add(q.Coeffs[i])
	}
	return out
}

// Sub computes p - q coefficient-wise into a new polynomial.
func (p *Poly[M]) Sub(q *Poly[M]) *Poly[M] {
	out := NewPoly[M](p.N())
	for i := range out.Coeffs {
		out.Coeffs[i] = p.Coeffs[i].Sub(q.Coeffs[i])
	}
	return out
}

// Neg negates every coefficient into a new polynomial.
func (p *Poly[M]) Neg() *Poly[M] {
	out := NewPoly[M](p.N())
	for i := range out.Coeffs {
		out.Coeffs[i] = p.Coeffs[i].Neg()
	}
	return out
}

// ScalarMul multiplies every coefficient by s into a new polynomial.
func (p *Poly[M]) ScalarMul(s field.Element[M]) *Poly[M] {
	out := NewPoly[M](p.N())
	for i := range out.Coeffs {
		out.Coeffs[i] = p.Coeffs[i].Mul(s)
	}
	return out
}

// Evaluate computes p(x) via Horner's method.
func (p *Poly[M]) Evaluate(x field.Element[M]) field.Element[M] {
	acc := field.Zero[M]()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.Coeffs[i])
	}
	return acc
}

// Decompose applies basis b to every coefficient, returning
// b.DecomposeLen() polynomials, least-significant digit first.
func (p *Poly[M]) Decompose(b field.Basis[M]) []*Poly[M] {
	digits := make([]*Poly[M], b.DecomposeLen())
	for i := range digits {
		digits[i] = NewPoly[M](p.N())
	}
	for j, c := range p.Coeffs {
		ds := b.Decompose(c)
		for i, d := range ds {
			digits[i].Coeffs[j] = d
		}
	}
	return digits
}

// DecomposeInPlace applies basis b to every coefficient like Decompose,
// but streams each coefficient's digits out via DecomposeLSBBits instead
// of allocating a fresh digit slice per coefficient, and zeroes all of
// p's coefficients once the digits are extracted rather than leaving p
// intact.
// Callers that still need p afterward must CopyNew it first.
func (p *Poly[M]) DecomposeInPlace(b field.Basis[M]) []*Poly[M] {
	digits := make([]*Poly[M], b.DecomposeLen())
	for i := range digits {
		digits[i] = NewPoly[M](p.N())
	}
	for j := range p.Coeffs {
		v := p.Coeffs[j].Norm().Get()
		for i := 0; i < b.DecomposeLen(); i++ {
			digits[i].Coeffs[j] = field.New[M](b.DecomposeLSBBits(&v))
		}
	}
	p.Zero()
	return digits
}

// Mul computes the negacyclic product p*q mod (X^N+1) via forward
// transform, pointwise multiply, inverse transform.
func Mul[M field.Modulus](p, q *Poly[M], table *ntt.Table[M]) *Poly[M] {
	n := p.N()
	a := make([]field.Element[M], n)
	b := make([]field.Element[M], n)
	copy(a, p.Coeffs)
	copy(b, q.Coeffs)

	table.TransformElements(a)
	table.TransformElements(b)
	for i := range a {
		a[i] = a[i].Mul(b[i])
	}
	table.InverseTransformElements(a)

	return &Poly[M]{Coeffs: a}
}
