package bfv

import (
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/ringpoly"
	"github.com/pado-labs/threshold-zk-lhe/rng"
)

// NewSecretKey samples a ternary secret polynomial. Grounded on
// BFVSecretKey::new's random_with_ternary call.
func NewSecretKey[M field.Modulus](ctx *Context[M]) *SecretKey[M] {
	coeffs := rng.TernaryField[M](ctx.prng, ctx.N())
	return &SecretKey[M]{S: ringpoly.NewPolyFromCoeffs(coeffs)}
}

// GenPublicKey samples a uniform a and a Gaussian error e, and returns
// (b, -a) with b = a*s + e. Grounded on BFVSecretKey::gen_pubkey.
func (sk *SecretKey[M]) GenPublicKey(ctx *Context[M]) *PublicKey[M] {
	a := ringpoly.NewPolyFromCoeffs(rng.UniformField[M](ctx.prng, ctx.N()))
	e := ringpoly.NewPolyFromCoeffs(rng.SampleGaussian[M](ctx.sampler, ctx.prng, ctx.N()))

	b := ringpoly.Mul(a, sk.S, ctx.table).Add(e)
	return &PublicKey[M]{B: b, NegA: a.Neg()}
}
