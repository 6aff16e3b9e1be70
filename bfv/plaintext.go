package bfv

import "github.com/pado-labs/threshold-zk-lhe/field"

// Plaintext is a degree-N polynomial over F_t. Grounded on
// original_source/bfv/src/plaintext.rs's BFVPlaintext.
type Plaintext struct {
	Poly []field.Plain
}

// NewPlaintext allocates a zero plaintext of n coefficients.
func NewPlaintext(n int) *Plaintext {
	return &Plaintext{Poly: make([]field.Plain, n)}
}
