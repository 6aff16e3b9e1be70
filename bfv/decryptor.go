package bfv

import (
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/ringpoly"
)

// Decrypt computes v = c0 + c1*s and rescales each coefficient by
// round(t*v_i/q), using the same symmetric split as Encrypt. Decryption
// never fails structurally; it returns the closest plaintext under the
// ciphertext's noise budget.
func Decrypt[M field.Modulus](ctx *Context[M], sk *SecretKey[M], ct *Ciphertext[M]) *Plaintext {
	v := ringpoly.Mul(ct.C1, sk.S, ctx.table).Add(ct.C0)
	q := field.Modulus_[M]()
	t := ctx.params.T()

	pt := NewPlaintext(len(v.Coeffs))
	for i, vi := range v.Coeffs {
		pt.Poly[i] = rescale[M](vi, q, t)
	}
	return pt
}

// rescale is embedScaled's inverse: it maps a noisy Delta*m value in
// R_q back to its nearest representative in F_t.
func rescale[M field.Modulus](v field.Element[M], q, t uint64) field.Plain {
	vi := v.Get()
	if vi > q/2 {
		diff := q - vi
		scaled := t - roundDiv(t*diff, q)
		return field.New[field.PlainModulus](scaled % t)
	}
	scaled := roundDiv(t*vi, q)
	return field.New[field.PlainModulus](scaled % t)
}
