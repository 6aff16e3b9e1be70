package mle

import "github.com/pado-labs/threshold-zk-lhe/field"

// term is one summand coeff * prod_{j in indices} flattened[j].
type term[M field.Modulus] struct {
	Coeff   field.Element[M]
	Indices []int
}

// ListOfProductsOfPolynomials is a sum of products of MLEs sharing a
// common numVariables, grounded on
// original_source/algebra/src/polynomial/multivariate/data_structures.rs's
// ListOfProductsOfPolynomials. The Rust source deduplicates registered
// MLEs via an Rc raw-pointer lookup table; here native Go pointer
// identity (*DenseMLE[M] as a map key) serves the same purpose without
// a side table of raw pointers.
type ListOfProductsOfPolynomials[M field.Modulus] struct {
	MaxMultiplicands int
	NumVariables     int

	terms           []term[M]
	flattenedMLExts []*DenseMLE[M]
	dedup           map[*DenseMLE[M]]int
}

// New builds an empty container over numVariables variables.
func New[M field.Modulus](numVariables int) *ListOfProductsOfPolynomials[M] {
	return &ListOfProductsOfPolynomials[M]{
		NumVariables: numVariables,
		dedup:        make(map[*DenseMLE[M]]int),
	}
}

// AddProduct registers coefficient * prod(factors) as one summand of
// the sum. Each distinct *DenseMLE[M] pointer is stored once in
// flattenedMLExts; repeated registrations of the same pointer reuse its
// existing index.
func (l *ListOfProductsOfPolynomials[M]) AddProduct(factors []*DenseMLE[M], coefficient field.Element[M]) {
	if len(factors) == 0 {
		panic("mle: product must have at least one multiplicand")
	}
	if len(factors) > l.MaxMultiplicands {
		l.MaxMultiplicands = len(factors)
	}
	indices := make([]int, len(factors))
	for i, p := range factors {
		if p.NumVars != l.NumVariables {
			panic("mle: product MLE NumVars does not match container's NumVariables")
		}
		idx, ok := l.dedup[p]
		if !ok {
			idx = len(l.flattenedMLExts)
			l.flattenedMLExts = append(l.flattenedMLExts, p)
			l.dedup[p] = idx
		}
		indices[i] = idx
	}
	l.terms = append(l.terms, term[M]{Coeff: coefficient, Indices: indices})
}

// Evaluate folds sum_i coeff_i * prod_j flattened[index_j].Evaluate(point).
func (l *ListOfProductsOfPolynomials[M]) Evaluate(point []field.Element[M]) field.Element[M] {
	sum := field.Zero[M]()
	for _, t := range l.terms {
		acc := t.Coeff
		for _, idx := range t.Indices {
			acc = acc.Mul(l.flattenedMLExts[idx].Evaluate(point))
		}
		sum = sum.Add(acc)
	}
	return sum
}

// FlattenedMLExtensions returns the deduplicated backing MLEs, in
// registration order.
func (l *ListOfProductsOfPolynomials[M]) FlattenedMLExtensions() []*DenseMLE[M] {
	return l.flattenedMLExts
}
