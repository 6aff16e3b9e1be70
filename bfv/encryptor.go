package bfv

import (
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/ringpoly"
	"github.com/pado-labs/threshold-zk-lhe/rng"
)

// Encrypt samples an ephemeral ternary u and two Gaussian errors e1, e2,
// embeds m with symmetric-representative Delta*m scaling, and returns
// (c0, c1) = (b*u + e1 + m~, (-a)*u + e2). Grounded on the BFV
// encryption step described by spec.md's §4.7 and
// original_source/bfv/src/scheme.rs.
func Encrypt[M field.Modulus](ctx *Context[M], pk *PublicKey[M], pt *Plaintext) *Ciphertext[M] {
	n := ctx.N()
	q := field.Modulus_[M]()
	t := ctx.params.T()

	u := ringpoly.NewPolyFromCoeffs(rng.TernaryField[M](ctx.prng, n))
	e1 := ringpoly.NewPolyFromCoeffs(rng.SampleGaussian[M](ctx.sampler, ctx.prng, n))
	e2 := ringpoly.NewPolyFromCoeffs(rng.SampleGaussian[M](ctx.sampler, ctx.prng, n))

	mTilde := make([]field.Element[M], n)
	for i, m := range pt.Poly {
		mTilde[i] = embedScaled[M](m, q, t)
	}
	mPoly := ringpoly.NewPolyFromCoeffs(mTilde)

	c0 := ringpoly.Mul(pk.B, u, ctx.table).Add(e1).Add(mPoly)
	c1 := ringpoly.Mul(pk.NegA, u, ctx.table).Add(e2)
	return &Ciphertext[M]{C0: c0, C1: c1}
}

// embedScaled computes round(q*m_i/t) under the symmetric
// representative of m_i: values above (t-1)/2 are treated as negative
// (m_i - t) and the result is q minus the scaled magnitude.
func embedScaled[M field.Modulus](m field.Plain, q, t uint64) field.Element[M] {
	mi := m.Get()
	half := (t - 1) / 2
	if mi > half {
		diff := t - mi
		return field.New[M](q - roundDiv(q*diff, t))
	}
	return field.New[M](roundDiv(q*mi, t))
}

// roundDiv computes round(num/den) for non-negative integers.
func roundDiv(num, den uint64) uint64 {
	return (num + den/2) / den
}
