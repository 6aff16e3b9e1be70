package tpke

import (
	"fmt"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
)

// GenContext is an alias for NewContext, matching the free-function
// ThresholdPKE::gen_context entry point.
func GenContext(totalNumber, thresholdNumber int, indices []field.Plain) (*Context, error) {
	return NewContext(totalNumber, thresholdNumber, indices)
}

// GenLagrangeCoeffs computes lambda_j = prod_{l != j} (-i_l) / (i_j - i_l)
// over F_t for the given chosen indices. Grounded on
// ThresholdPKE::gen_lagrange_coeffs.
func GenLagrangeCoeffs(chosenIndices []field.Plain) ([]field.Plain, error) {
	for _, idx := range chosenIndices {
		if idx.IsZero() {
			return nil, fmt.Errorf("%w: indices must not contain 0", ErrBadThresholdPolicy)
		}
	}

	coeffs := make([]field.Plain, len(chosenIndices))
	for i, point := range chosenIndices {
		numerator := field.One[field.PlainModulus]()
		denominator := field.One[field.PlainModulus]()
		for j, x := range chosenIndices {
			if j == i {
				continue
			}
			numerator = numerator.Mul(x.Neg())
			denominator = denominator.Mul(point.Sub(x))
		}
		inv, err := denominator.Inv()
		if err != nil {
			return nil, err
		}
		coeffs[i] = numerator.Mul(inv)
	}
	return coeffs, nil
}

// GenKeyPair samples a fresh BFV keypair under ctx's parameters.
func GenKeyPair(ctx *Context) (*bfv.SecretKey[field.CipherModulus], *bfv.PublicKey[field.CipherModulus]) {
	sk := bfv.NewSecretKey[field.CipherModulus](ctx.bfvCtx)
	pk := sk.GenPublicKey(ctx.bfvCtx)
	return sk, pk
}

// Encrypt secret-shares m according to ctx's policy, then encrypts the
// j-th share under pks[j]. Precondition: len(pks) == policy.TotalNumber().
func Encrypt(ctx *Context, pks []*bfv.PublicKey[field.CipherModulus], m *bfv.Plaintext) ([]*Share, error) {
	if len(pks) != ctx.policy.totalNumber {
		return nil, fmt.Errorf("%w: len(pks)=%d != total_number=%d", ErrBadThresholdPolicy, len(pks), ctx.policy.totalNumber)
	}

	shareCoeffs := ctx.policy.SecretSharing(ctx.bfvCtx.PRNG(), m.Poly)
	shares := make([]*Share, len(shareCoeffs))
	for j, coeffs := range shareCoeffs {
		ct := bfv.Encrypt(ctx.bfvCtx, pks[j], &bfv.Plaintext{Poly: coeffs})
		shares[j] = &Share{Ciphertext: ct, NodeIndex: ctx.policy.indices[j], State: Fresh}
	}
	return shares, nil
}

// Decrypt performs standard BFV decryption under the recipient's
// secret key.
func Decrypt(ctx *Context, sk *bfv.SecretKey[field.CipherModulus], ct *bfv.Ciphertext[field.CipherModulus]) *bfv.Plaintext {
	return bfv.Decrypt(ctx.bfvCtx, sk, ct)
}

// ReEncrypt decrypts a Fresh share with sk and re-encrypts the
// recovered share polynomial under pkNew; the share content is
// unchanged, only the key it is encrypted under.
func ReEncrypt(ctx *Context, share *Share, sk *bfv.SecretKey[field.CipherModulus], pkNew *bfv.PublicKey[field.CipherModulus]) (*Share, error) {
	if share.State != Fresh {
		return nil, fmt.Errorf("%w: re-encrypt requires a fresh share, got %s", ErrShareState, share.State)
	}
	m := Decrypt(ctx, sk, share.Ciphertext)
	ct := bfv.Encrypt(ctx.bfvCtx, pkNew, m)
	return &Share{Ciphertext: ct, NodeIndex: share.NodeIndex, State: ReEncrypted}, nil
}

// Combine evaluates the Lagrange combination of k re-encrypted shares
// homomorphically as a BFV inner product.
func Combine(ctx *Context, shares []*Share) (*Share, error) {
	indices := make([]field.Plain, len(shares))
	cts := make([]*bfv.Ciphertext[field.CipherModulus], len(shares))
	for i, s := range shares {
		if s.State != ReEncrypted {
			return nil, fmt.Errorf("%w: combine requires re-encrypted shares, got %s", ErrShareState, s.State)
		}
		indices[i] = s.NodeIndex
		cts[i] = s.Ciphertext
	}

	lambdas, err := GenLagrangeCoeffs(indices)
	if err != nil {
		return nil, err
	}
	combined := bfv.InnerProduct(cts, lambdas)
	return &Share{Ciphertext: combined, State: Combined}, nil
}
