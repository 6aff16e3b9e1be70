package bfv

import (
	"testing"

	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) *Context[field.CipherModulus] {
	t.Helper()
	params, err := NewParametersFromLiteral(DefaultParametersLiteral)
	require.NoError(t, err)
	ctx, err := NewContext[field.CipherModulus](params)
	require.NoError(t, err)
	return ctx
}

func plaintextFromInts(n int, vals []uint64) *Plaintext {
	pt := NewPlaintext(n)
	for i, v := range vals {
		pt.Poly[i] = field.New[field.PlainModulus](v)
	}
	return pt
}

func requirePlaintextEqual(t *testing.T, want, got *Plaintext) {
	t.Helper()
	require.Len(t, got.Poly, len(want.Poly))
	for i := range want.Poly {
		require.True(t, want.Poly[i].Equal(got.Poly[i]), "coefficient %d: want %d got %d", i, want.Poly[i].Get(), got.Poly[i].Get())
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ctx := testContext(t)
	sk := NewSecretKey[field.CipherModulus](ctx)
	pk := sk.GenPublicKey(ctx)

	for trial := 0; trial < 10; trial++ {
		vals := make([]uint64, ctx.N())
		for i := range vals {
			vals[i] = uint64((i + trial) % int(ctx.Params().T()))
		}
		pt := plaintextFromInts(ctx.N(), vals)
		ct := Encrypt(ctx, pk, pt)
		got := Decrypt(ctx, sk, ct)
		requirePlaintextEqual(t, pt, got)
	}
}

func TestConcreteScenario4(t *testing.T) {
	ctx := testContext(t)
	sk := NewSecretKey[field.CipherModulus](ctx)
	pk := sk.GenPublicKey(ctx)

	vals := make([]uint64, ctx.N())
	for i := 0; i < 20; i++ {
		vals[i] = uint64(i + 1)
	}
	pt := plaintextFromInts(ctx.N(), vals)
	ct := Encrypt(ctx, pk, pt)
	got := Decrypt(ctx, sk, ct)
	requirePlaintextEqual(t, pt, got)
}

func TestAddHomomorphism(t *testing.T) {
	ctx := testContext(t)
	sk := NewSecretKey[field.CipherModulus](ctx)
	pk := sk.GenPublicKey(ctx)
	t_ := ctx.Params().T()

	m1 := plaintextFromInts(ctx.N(), []uint64{3, 5, 7})
	m2 := plaintextFromInts(ctx.N(), []uint64{4, 2, 1})
	ct1 := Encrypt(ctx, pk, m1)
	ct2 := Encrypt(ctx, pk, m2)

	sum := ct1.Add(ct2)
	got := Decrypt(ctx, sk, sum)

	for i := 0; i < 3; i++ {
		want := (m1.Poly[i].Get() + m2.Poly[i].Get()) % t_
		require.Equal(t, want, got.Poly[i].Get())
	}
}

func TestScalarMulHomomorphism(t *testing.T) {
	ctx := testContext(t)
	sk := NewSecretKey[field.CipherModulus](ctx)
	pk := sk.GenPublicKey(ctx)
	tMod := ctx.Params().T()

	m := plaintextFromInts(ctx.N(), []uint64{3, 5, 7})
	alpha := field.New[field.PlainModulus](6)
	ct := Encrypt(ctx, pk, m)
	scaled := ScalarMul(alpha, ct)
	got := Decrypt(ctx, sk, scaled)

	for i := 0; i < 3; i++ {
		want := (alpha.Get() * m.Poly[i].Get()) % tMod
		require.Equal(t, want, got.Poly[i].Get())
	}
}

func TestInnerProductUpTo20Terms(t *testing.T) {
	ctx := testContext(t)
	sk := NewSecretKey[field.CipherModulus](ctx)
	pk := sk.GenPublicKey(ctx)
	tMod := ctx.Params().T()

	const numTerms = 20
	cts := make([]*Ciphertext[field.CipherModulus], numTerms)
	alphas := make([]field.Plain, numTerms)
	ms := make([]uint64, numTerms)
	for i := 0; i < numTerms; i++ {
		mi := uint64((i*7 + 3) % int(tMod))
		ai := uint64((i*3 + 1) % int(tMod))
		ms[i] = mi
		alphas[i] = field.New[field.PlainModulus](ai)
		cts[i] = Encrypt(ctx, pk, plaintextFromInts(ctx.N(), []uint64{mi}))
	}

	combined := InnerProduct(cts, alphas)
	got := Decrypt(ctx, sk, combined)

	want := uint64(0)
	for i := 0; i < numTerms; i++ {
		want = (want + alphas[i].Get()*ms[i]) % tMod
	}
	require.Equal(t, want, got.Poly[0].Get())
}

func TestParametersValidation(t *testing.T) {
	_, err := NewParametersFromLiteral(ParametersLiteral{N: 1000, Q: 132120577, T: 61})
	require.Error(t, err, "N not a power of two")

	_, err = NewParametersFromLiteral(ParametersLiteral{N: 1024, Q: 61, T: 61})
	require.Error(t, err, "t must be strictly less than q")

	_, err = NewParametersFromLiteral(ParametersLiteral{N: 1024, Q: 132120578, T: 61})
	require.Error(t, err, "q-1 must be divisible by 2N")

	p, err := NewParametersFromLiteral(DefaultParametersLiteral)
	require.NoError(t, err)
	require.Equal(t, 1024, p.N())
	require.Equal(t, 3.2, p.Sigma())
}

func TestKeySerializationRoundTrip(t *testing.T) {
	ctx := testContext(t)
	sk := NewSecretKey[field.CipherModulus](ctx)
	pk := sk.GenPublicKey(ctx)

	sk2 := SecretKeyFromBytes[field.CipherModulus](sk.ToBytes())
	for i := range sk.S.Coeffs {
		require.True(t, sk.S.Coeffs[i].Equal(sk2.S.Coeffs[i]))
	}

	pk2 := PublicKeyFromBytes[field.CipherModulus](pk.ToBytes())
	for i := range pk.B.Coeffs {
		require.True(t, pk.B.Coeffs[i].Equal(pk2.B.Coeffs[i]))
	}
	for i := range pk.NegA.Coeffs {
		require.True(t, pk.NegA.Coeffs[i].Equal(pk2.NegA.Coeffs[i]))
	}
}

func TestCiphertextSerializationRoundTrip(t *testing.T) {
	ctx := testContext(t)
	sk := NewSecretKey[field.CipherModulus](ctx)
	pk := sk.GenPublicKey(ctx)

	pt := plaintextFromInts(ctx.N(), []uint64{9, 8, 7})
	ct := Encrypt(ctx, pk, pt)

	ct2 := CiphertextFromBytes[field.CipherModulus](ct.ToBytes())
	got := Decrypt(ctx, sk, ct2)
	requirePlaintextEqual(t, pt, got)
}
