// Package mle implements dense multilinear extensions and sum-of-products
// containers over them, grounded on
// original_source/algebra/src/polynomial/multivariate/{multilinear/dense,data_structures}.rs.
package mle

import "github.com/pado-labs/threshold-zk-lhe/field"

// DenseMLE stores a multilinear polynomial in dense evaluation form: the
// evaluation over {0,1}^numVars, index i representing the point whose
// coordinates are i's bits in little-endian order (bit 0b1011 is
// P(1,1,0,1)).
type DenseMLE[M field.Modulus] struct {
	Evaluations []field.Element[M]
	NumVars     int
}

// NewDenseMLE builds a DenseMLE from an evaluations slice of length
// 2^numVars.
func NewDenseMLE[M field.Modulus](numVars int, evaluations []field.Element[M]) *DenseMLE[M] {
	if len(evaluations) != 1<<numVars {
		panic("mle: evaluations length must be 2^numVars")
	}
	cp := make([]field.Element[M], len(evaluations))
	copy(cp, evaluations)
	return &DenseMLE[M]{Evaluations: cp, NumVars: numVars}
}

// Zero returns the constant-zero MLE of zero variables.
func Zero[M field.Modulus]() *DenseMLE[M] {
	return &DenseMLE[M]{Evaluations: []field.Element[M]{field.Zero[M]()}, NumVars: 0}
}

// IsZero reports whether m is the constant-zero MLE.
func (m *DenseMLE[M]) IsZero() bool {
	return m.NumVars == 0 && m.Evaluations[0].IsZero()
}

// FixVariables fixes the leading len(partialPoint) variables to the
// given values, folding one variable per round: each pair
// (poly[2b], poly[2b+1]) collapses to poly[2b] + r*(poly[2b+1]-poly[2b]).
// The domain halves each round; the result has NumVars-len(partialPoint)
// variables.
func (m *DenseMLE[M]) FixVariables(partialPoint []field.Element[M]) *DenseMLE[M] {
	if len(partialPoint) > m.NumVars {
		panic("mle: partial point larger than NumVars")
	}
	nv := m.NumVars
	dim := len(partialPoint)
	poly := make([]field.Element[M], len(m.Evaluations))
	copy(poly, m.Evaluations)

	for i := 1; i <= dim; i++ {
		r := partialPoint[i-1]
		width := 1 << (nv - i)
		for b := 0; b < width; b++ {
			left := poly[b<<1]
			right := poly[(b<<1)+1]
			poly[b] = left.Add(r.Mul(right.Sub(left)))
		}
	}
	poly = poly[:1<<(nv-dim)]
	return NewDenseMLE[M](nv-dim, poly)
}

// Evaluate evaluates the MLE at a full point of length NumVars.
func (m *DenseMLE[M]) Evaluate(point []field.Element[M]) field.Element[M] {
	if len(point) != m.NumVars {
		panic("mle: point size does not match NumVars")
	}
	return m.FixVariables(point).Evaluations[0]
}

// CopyNew returns an independent deep copy.
func (m *DenseMLE[M]) CopyNew() *DenseMLE[M] {
	return NewDenseMLE[M](m.NumVars, m.Evaluations)
}

// Add returns m+o, handling the constant-zero identity without a
// NumVars mismatch panic.
func (m *DenseMLE[M]) Add(o *DenseMLE[M]) *DenseMLE[M] {
	if o.IsZero() {
		return m.CopyNew()
	}
	if m.IsZero() {
		return o.CopyNew()
	}
	if m.NumVars != o.NumVars {
		panic("mle: NumVars mismatch in Add")
	}
	out := make([]field.Element[M], len(m.Evaluations))
	for i := range out {
		out[i] = m.Evaluations[i].Add(o.Evaluations[i])
	}
	return NewDenseMLE[M](m.NumVars, out)
}

// Sub returns m-o, with the same zero-handling as Add.
func (m *DenseMLE[M]) Sub(o *DenseMLE[M]) *DenseMLE[M] {
	if o.IsZero() {
		return m.CopyNew()
	}
	if m.IsZero() {
		return o.Neg()
	}
	if m.NumVars != o.NumVars {
		panic("mle: NumVars mismatch in Sub")
	}
	out := make([]field.Element[M], len(m.Evaluations))
	for i := range out {
		out[i] = m.Evaluations[i].Sub(o.Evaluations[i])
	}
	return NewDenseMLE[M](m.NumVars, out)
}

// Neg returns -m, elementwise.
func (m *DenseMLE[M]) Neg() *DenseMLE[M] {
	out := make([]field.Element[M], len(m.Evaluations))
	for i, e := range m.Evaluations {
		out[i] = e.Neg()
	}
	return NewDenseMLE[M](m.NumVars, out)
}

// AddScaled adds f*o into m in place: m_i += f*o_i. Replaces the Rust
// source's `AddAssign<(F, &MLE)>` operator overload.
func (m *DenseMLE[M]) AddScaled(f field.Element[M], o *DenseMLE[M]) {
	for i := range m.Evaluations {
		m.Evaluations[i] = m.Evaluations[i].AddMul(f, o.Evaluations[i])
	}
}
