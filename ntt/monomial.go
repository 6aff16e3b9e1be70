package ntt

import "github.com/pado-labs/threshold-zk-lhe/field"

// MonomialTransform fills values with the NTT evaluation of the single
// monomial coeff*X^degree, without running a full transform. Grounded
// on transform_monomial in
// original_source/algebra/src/transformation/ntt_table.rs.
func (t *Table[M]) MonomialTransform(coeff field.Element[M], degree int, values []field.Element[M]) {
	p := t.p
	mask := (1 << (t.logN + 1)) - 1

	if coeff.IsZero() {
		for i := range values {
			values[i] = field.Zero[M]()
		}
		return
	}
	if degree == 0 {
		for i := range values {
			values[i] = coeff
		}
		return
	}

	switch {
	case coeff.Equal(field.One[M]()):
		for k, i := range t.reverseLsbs {
			idx := ((2*i + 1) * degree) & mask
			values[k] = field.NewUnchecked[M](t.ordinalRootPowers[idx].Value())
		}
	case coeff.Equal(field.NegOne[M]()):
		for k, i := range t.reverseLsbs {
			idx := ((2*i + 1) * degree) & mask
			v := t.ordinalRootPowers[idx].Value()
			if v != 0 {
				v = p - v
			}
			values[k] = field.NewUnchecked[M](v)
		}
	default:
		for k, i := range t.reverseLsbs {
			idx := ((2*i + 1) * degree) & mask
			root := t.ordinalRootPowers[idx]
			values[k] = field.NewUnchecked[M](root.MulReduce(coeff.Get(), p))
		}
	}
}

// TransformCoeffOneMonomial fills values with the NTT evaluation of
// X^degree (coefficient fixed at one), the common case used when
// building monomial masks.
func (t *Table[M]) TransformCoeffOneMonomial(degree int, values []field.Element[M]) {
	if degree == 0 {
		for i := range values {
			values[i] = field.One[M]()
		}
		return
	}
	mask := (1 << (t.logN + 1)) - 1
	for k, i := range t.reverseLsbs {
		idx := ((2*i + 1) * degree) & mask
		values[k] = field.NewUnchecked[M](t.ordinalRootPowers[idx].Value())
	}
}
