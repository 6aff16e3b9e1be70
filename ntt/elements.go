package ntt

import "github.com/pado-labs/threshold-zk-lhe/field"

// TransformElements runs Transform over a field.Element slice in place.
func (t *Table[M]) TransformElements(values []field.Element[M]) {
	raw := make([]uint64, len(values))
	for i, v := range values {
		raw[i] = v.Get()
	}
	t.Transform(raw)
	for i, v := range raw {
		values[i] = field.NewUnchecked[M](v)
	}
}

// InverseTransformElements runs InverseTransform over a field.Element
// slice in place.
func (t *Table[M]) InverseTransformElements(values []field.Element[M]) {
	raw := make([]uint64, len(values))
	for i, v := range values {
		raw[i] = v.Get()
	}
	t.InverseTransform(raw)
	for i, v := range raw {
		values[i] = field.NewUnchecked[M](v)
	}
}
