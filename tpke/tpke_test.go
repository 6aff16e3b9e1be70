package tpke

import (
	"testing"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/stretchr/testify/require"
)

func indicesFor(n int) []field.Plain {
	out := make([]field.Plain, n)
	for i := range out {
		out[i] = field.New[field.PlainModulus](uint64(i + 1))
	}
	return out
}

func messageFor(ctx *Context) *bfv.Plaintext {
	pt := bfv.NewPlaintext(ctx.BFVContext().N())
	for i := 0; i < 10; i++ {
		pt.Poly[i] = field.New[field.PlainModulus](uint64(i + 1))
	}
	return pt
}

func requirePlaintextEqual(t *testing.T, want, got *bfv.Plaintext) {
	t.Helper()
	require.Len(t, got.Poly, len(want.Poly))
	for i := range want.Poly {
		require.True(t, want.Poly[i].Equal(got.Poly[i]), "coefficient %d", i)
	}
}

// TestConcreteScenario5 is spec.md §8 scenario 5: (n=3,k=2), indices
// {1,2,3}, re-encrypt shares 0 and 1, combine with Lagrange {1,2}.
func TestConcreteScenario5(t *testing.T) {
	ctx, err := NewContext(3, 2, indicesFor(3))
	require.NoError(t, err)

	nodeSK := make([]*bfv.SecretKey[field.CipherModulus], 3)
	nodePK := make([]*bfv.PublicKey[field.CipherModulus], 3)
	for i := range nodeSK {
		nodeSK[i], nodePK[i] = GenKeyPair(ctx)
	}
	recipientSK, recipientPK := GenKeyPair(ctx)

	m := messageFor(ctx)
	shares, err := Encrypt(ctx, nodePK, m)
	require.NoError(t, err)
	require.Len(t, shares, 3)

	reEnc := make([]*Share, 2)
	for i := 0; i < 2; i++ {
		reEnc[i], err = ReEncrypt(ctx, shares[i], nodeSK[i], recipientPK)
		require.NoError(t, err)
		require.Equal(t, ReEncrypted, reEnc[i].State)
	}

	combined, err := Combine(ctx, reEnc)
	require.NoError(t, err)
	require.Equal(t, Combined, combined.State)

	got := Decrypt(ctx, recipientSK, combined.Ciphertext)
	requirePlaintextEqual(t, m, got)
}

// TestThresholdCorrectnessAllKSubsets exercises every k-subset of
// [1..n] per spec.md §8's "Threshold correctness" property.
func TestThresholdCorrectnessAllKSubsets(t *testing.T) {
	const n, k = 4, 3
	ctx, err := NewContext(n, k, indicesFor(n))
	require.NoError(t, err)

	nodeSK := make([]*bfv.SecretKey[field.CipherModulus], n)
	nodePK := make([]*bfv.PublicKey[field.CipherModulus], n)
	for i := range nodeSK {
		nodeSK[i], nodePK[i] = GenKeyPair(ctx)
	}
	m := messageFor(ctx)

	subsets := [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	for _, subset := range subsets {
		recipientSK, recipientPK := GenKeyPair(ctx)
		shares, err := Encrypt(ctx, nodePK, m)
		require.NoError(t, err)

		reEnc := make([]*Share, len(subset))
		for i, j := range subset {
			reEnc[i], err = ReEncrypt(ctx, shares[j], nodeSK[j], recipientPK)
			require.NoError(t, err)
		}
		combined, err := Combine(ctx, reEnc)
		require.NoError(t, err)

		got := Decrypt(ctx, recipientSK, combined.Ciphertext)
		requirePlaintextEqual(t, m, got)
	}
}

func TestReEncryptRejectsNonFreshShare(t *testing.T) {
	ctx, err := NewContext(3, 2, indicesFor(3))
	require.NoError(t, err)
	nodeSK := make([]*bfv.SecretKey[field.CipherModulus], 3)
	nodePK := make([]*bfv.PublicKey[field.CipherModulus], 3)
	for i := range nodeSK {
		nodeSK[i], nodePK[i] = GenKeyPair(ctx)
	}
	_, recipientPK := GenKeyPair(ctx)

	shares, err := Encrypt(ctx, nodePK, messageFor(ctx))
	require.NoError(t, err)

	reEnc, err := ReEncrypt(ctx, shares[0], nodeSK[0], recipientPK)
	require.NoError(t, err)

	_, err = ReEncrypt(ctx, reEnc, nodeSK[0], recipientPK)
	require.ErrorIs(t, err, ErrShareState)
}

func TestCombineRejectsFreshShares(t *testing.T) {
	ctx, err := NewContext(3, 2, indicesFor(3))
	require.NoError(t, err)
	_, nodePK0 := GenKeyPair(ctx)
	_, nodePK1 := GenKeyPair(ctx)
	_, nodePK2 := GenKeyPair(ctx)

	shares, err := Encrypt(ctx, []*bfv.PublicKey[field.CipherModulus]{nodePK0, nodePK1, nodePK2}, messageFor(ctx))
	require.NoError(t, err)

	_, err = Combine(ctx, shares[:2])
	require.ErrorIs(t, err, ErrShareState)
}

func TestNewThresholdPolicyValidation(t *testing.T) {
	_, err := NewThresholdPolicy(3, 2, indicesFor(2))
	require.ErrorIs(t, err, ErrBadThresholdPolicy, "indices length mismatch")

	_, err = NewThresholdPolicy(3, 4, indicesFor(3))
	require.ErrorIs(t, err, ErrBadThresholdPolicy, "threshold exceeds total")

	zeroIndices := indicesFor(3)
	zeroIndices[0] = field.Zero[field.PlainModulus]()
	_, err = NewThresholdPolicy(3, 2, zeroIndices)
	require.ErrorIs(t, err, ErrBadThresholdPolicy, "zero index rejected")

	_, err = NewThresholdPolicy(MaxNodes+1, 2, indicesFor(MaxNodes+1))
	require.ErrorIs(t, err, ErrBadThresholdPolicy, "exceeds MaxNodes")
}
