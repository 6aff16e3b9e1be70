package reduce

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPrime = uint64(132120577)

func TestBarrettReduceSingleWord(t *testing.T) {
	bm, err := NewBarrettModulus[uint64](testPrime)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x := r.Uint64() % (1 << 62)
		require.Equal(t, x%testPrime, bm.Reduce(x))
	}
}

func TestBarrettReduceWide(t *testing.T) {
	bm, err := NewBarrettModulus[uint64](testPrime)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a := r.Uint64() % testPrime
		b := r.Uint64() % testPrime
		lo, hi := WidenMul(a, b)
		want := (a % testPrime) * (b % testPrime) % testPrime
		require.Equal(t, want, bm.ReduceWide(lo, hi))
	}
}

func TestShoupIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		w := r.Uint64() % testPrime
		x := r.Uint64() % testPrime
		sf := NewShoupFactor(w, testPrime)

		lazy := sf.MulReduceLazy(x, testPrime)
		require.Less(t, lazy, 2*testPrime)

		canon := sf.MulReduce(x, testPrime)
		want := (w * x) % testPrime
		require.Equal(t, want, canon)
	}
}

func TestPowReduceFermat(t *testing.T) {
	bm, err := NewBarrettModulus[uint64](testPrime)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 10; i++ {
		g := 2 + r.Uint64()%(testPrime-2)
		require.Equal(t, uint64(1), PowReduce(g, testPrime-1, bm))
	}
}

func TestInvReduceRoundTrip(t *testing.T) {
	bm, err := NewBarrettModulus[uint64](testPrime)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		x := 1 + r.Uint64()%(testPrime-1)
		inv, err := InvReduce(x, bm)
		require.NoError(t, err)

		back, err := InvReduce(inv, bm)
		require.NoError(t, err)
		require.Equal(t, x, back)

		require.Equal(t, uint64(1), bm.Reduce(x*inv%testPrime))
	}
}

func TestPowOf2Modulus(t *testing.T) {
	pm, err := NewPowOf2Modulus[uint64](0xFF)
	require.NoError(t, err)
	require.Equal(t, uint64(256), pm.Value())
	require.Equal(t, uint64(0x12), pm.Add(0xF0, 0x22))
	require.Equal(t, uint64(0), pm.Sub(0x10, 0x10))
}
