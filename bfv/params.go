// Package bfv implements single-modulus RLWE-based linearly
// homomorphic encryption: KeyGen, Encrypt, Decrypt, Add, ScalarMul, and
// InnerProduct over R_q = Z_q[X]/(X^N+1). Grounded on
// original_source/bfv/src/{context,ciphertext,plaintext,publickey,
// secretkey}.rs, following a validated ParametersLiteral/Parameters
// configuration pipeline narrowed to a single modulus.
package bfv

import (
	"fmt"
	"math/bits"

	"github.com/google/go-cmp/cmp"
)

// ParametersLiteral is the user-facing, unchecked parameter
// specification. NewParametersFromLiteral validates it into Parameters.
type ParametersLiteral struct {
	N     int     // ring degree, must be a power of two
	Q     uint64  // ciphertext modulus, must satisfy q-1 = 0 mod 2N
	T     uint64  // plaintext modulus, must be < Q
	Sigma float64 // discrete Gaussian standard deviation for error sampling
}

// DefaultParametersLiteral is the reference parameter set named by
// the reference BFV parameter set: N=1024, q=132120577 (a 27-bit prime
// with q-1 = 0 mod 2N), t=61.
var DefaultParametersLiteral = ParametersLiteral{
	N:     1024,
	Q:     132120577,
	T:     61,
	Sigma: 3.2,
}

// Parameters is the validated, immutable parameter set used to
// construct a Context.
type Parameters struct {
	n     int
	logN  int
	q     uint64
	t     uint64
	sigma float64
}

// NewParametersFromLiteral validates pl and returns the derived
// Parameters, or an error if N is not a power of two, t does not fit
// under q, or q lacks the 2N-th root of unity BFV needs.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {
	if pl.N <= 0 || pl.N&(pl.N-1) != 0 {
		return Parameters{}, fmt.Errorf("bfv: N=%d is not a power of two", pl.N)
	}
	if pl.T == 0 || pl.T >= pl.Q {
		return Parameters{}, fmt.Errorf("bfv: plaintext modulus t=%d must be in (0, q=%d)", pl.T, pl.Q)
	}
	if (pl.Q-1)%uint64(2*pl.N) != 0 {
		return Parameters{}, fmt.Errorf("bfv: q=%d must satisfy q-1 = 0 mod 2N (N=%d)", pl.Q, pl.N)
	}
	sigma := pl.Sigma
	if sigma == 0 {
		sigma = 3.2
	}
	return Parameters{
		n:     pl.N,
		logN:  bits.Len(uint(pl.N)) - 1,
		q:     pl.Q,
		t:     pl.T,
		sigma: sigma,
	}, nil
}

func (p Parameters) N() int        { return p.n }
func (p Parameters) LogN() int     { return p.logN }
func (p Parameters) Q() uint64     { return p.q }
func (p Parameters) T() uint64     { return p.t }
func (p Parameters) Sigma() float64 { return p.sigma }

// Equal reports whether p and other were derived from the same
// literal parameter set.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p, other, cmp.AllowUnexported(Parameters{}))
}
