// Package tpke implements threshold public-key encryption over BFV:
// Shamir secret-sharing of a plaintext polynomial's coefficients,
// per-share encryption under distinct recipient keys, proxy
// re-encryption, and homomorphic Lagrange combination. Grounded on
// original_source/bfv/src/tpke.rs.
package tpke

import (
	"fmt"

	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/rng"
)

// MaxNodes bounds the number of parties a ThresholdPolicy may name,
// matching original_source/bfv/src/lib.rs's MAX_USER_NUMBER.
const MaxNodes = 20

// ThresholdPolicy names the (n, k) structure of a sharing: n node
// indices (none zero, none repeated by convention) and a reconstruction
// threshold k <= n.
type ThresholdPolicy struct {
	totalNumber     int
	thresholdNumber int
	indices         []field.Plain
}

// NewThresholdPolicy validates and constructs a ThresholdPolicy.
func NewThresholdPolicy(totalNumber, thresholdNumber int, indices []field.Plain) (*ThresholdPolicy, error) {
	if len(indices) != totalNumber {
		return nil, fmt.Errorf("%w: indices length %d != total_number %d", ErrBadThresholdPolicy, len(indices), totalNumber)
	}
	for _, idx := range indices {
		if idx.IsZero() {
			return nil, fmt.Errorf("%w: indices must not contain 0", ErrBadThresholdPolicy)
		}
	}
	if thresholdNumber <= 0 || thresholdNumber > totalNumber {
		return nil, fmt.Errorf("%w: threshold_number %d exceeds total_number %d", ErrBadThresholdPolicy, thresholdNumber, totalNumber)
	}
	if totalNumber > MaxNodes {
		return nil, fmt.Errorf("%w: total_number %d exceeds MaxNodes %d", ErrBadThresholdPolicy, totalNumber, MaxNodes)
	}
	return &ThresholdPolicy{totalNumber: totalNumber, thresholdNumber: thresholdNumber, indices: indices}, nil
}

func (p *ThresholdPolicy) TotalNumber() int          { return p.totalNumber }
func (p *ThresholdPolicy) ThresholdNumber() int      { return p.thresholdNumber }
func (p *ThresholdPolicy) Indices() []field.Plain    { return p.indices }

// SecretSharing splits secret (one F_t value per polynomial
// coefficient) into p.totalNumber share vectors: for each coefficient
// it draws a random degree-(thresholdNumber-1) polynomial with constant
// term equal to that coefficient, then evaluates it at every node
// index. Grounded on ThresholdPolicy::secret_sharing.
func (p *ThresholdPolicy) SecretSharing(prng *rng.KeyedPRNG, secret []field.Plain) [][]field.Plain {
	shares := make([][]field.Plain, p.totalNumber)
	for j := range shares {
		shares[j] = make([]field.Plain, len(secret))
	}

	for i, m := range secret {
		coeffs := rng.UniformField[field.PlainModulus](prng, p.thresholdNumber)
		coeffs[0] = m
		for j, idx := range p.indices {
			shares[j][i] = evalPoly(coeffs, idx)
		}
	}
	return shares
}

func evalPoly(coeffs []field.Plain, x field.Plain) field.Plain {
	acc := field.Zero[field.PlainModulus]()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(coeffs[i])
	}
	return acc
}
