package hybrid

import (
	"testing"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/tpke"
	"github.com/stretchr/testify/require"
)

func indicesFor(n int) []field.Plain {
	out := make([]field.Plain, n)
	for i := range out {
		out[i] = field.New[field.PlainModulus](uint64(i + 1))
	}
	return out
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ctx, err := tpke.NewContext(3, 2, indicesFor(3))
	require.NoError(t, err)

	nodeSK := make([]*bfv.SecretKey[field.CipherModulus], 3)
	nodePK := make([]*bfv.PublicKey[field.CipherModulus], 3)
	for i := range nodeSK {
		nodeSK[i], nodePK[i] = tpke.GenKeyPair(ctx)
	}
	recipientSK, recipientPK := tpke.GenKeyPair(ctx)

	payload := []byte("the quick brown fox jumps over the lazy dog")
	enc, err := Encrypt(ctx, nodePK, payload)
	require.NoError(t, err)
	require.Len(t, enc.KeyShares, 3)

	reEnc := make([]*tpke.Share, 2)
	for i := 0; i < 2; i++ {
		reEnc[i], err = tpke.ReEncrypt(ctx, enc.KeyShares[i], nodeSK[i], recipientPK)
		require.NoError(t, err)
	}
	combined, err := tpke.Combine(ctx, reEnc)
	require.NoError(t, err)

	pt := tpke.Decrypt(ctx, recipientSK, combined.Ciphertext)

	got, err := Decrypt(pt, enc)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestDecryptFailsOnWrongKey(t *testing.T) {
	ctx, err := tpke.NewContext(3, 2, indicesFor(3))
	require.NoError(t, err)
	nodePK := make([]*bfv.PublicKey[field.CipherModulus], 3)
	for i := range nodePK {
		_, nodePK[i] = tpke.GenKeyPair(ctx)
	}

	enc, err := Encrypt(ctx, nodePK, []byte("secret payload"))
	require.NoError(t, err)

	wrongKeyPlaintext := bfv.NewPlaintext(ctx.BFVContext().N())
	_, err = Decrypt(wrongKeyPlaintext, enc)
	require.Error(t, err)
}

func TestKeyToPlaintextRoundTrip(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i * 7)
	}
	pt := keyToPlaintext(key, 1024)
	require.Equal(t, key, plaintextToKey(pt))
}
