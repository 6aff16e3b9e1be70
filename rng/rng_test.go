package rng

import (
	"testing"

	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/stretchr/testify/require"
)

func TestKeyedPRNGDeterministic(t *testing.T) {
	a, err := NewKeyedPRNG([]byte("seed-one"))
	require.NoError(t, err)
	b, err := NewKeyedPRNG([]byte("seed-one"))
	require.NoError(t, err)

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)
	require.Equal(t, bufA, bufB)
}

func TestKeyedPRNGDifferentSeedsDiverge(t *testing.T) {
	a, err := NewKeyedPRNG([]byte("seed-one"))
	require.NoError(t, err)
	b, err := NewKeyedPRNG([]byte("seed-two"))
	require.NoError(t, err)

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)
	require.NotEqual(t, bufA, bufB)
}

func TestResetRewindsStream(t *testing.T) {
	p, err := NewKeyedPRNG([]byte("rewind"))
	require.NoError(t, err)

	first := make([]byte, 32)
	_, _ = p.Read(first)

	require.NoError(t, p.Reset())
	second := make([]byte, 32)
	_, _ = p.Read(second)

	require.Equal(t, first, second)
}

func TestUniformRangeStaysInBounds(t *testing.T) {
	p, err := NewKeyedPRNG([]byte("uniform"))
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v := p.UniformRange(5, 17)
		require.GreaterOrEqual(t, v, uint64(5))
		require.LessOrEqual(t, v, uint64(17))
	}
}

func TestTernaryFieldOnlyTakesThreeValues(t *testing.T) {
	p, err := NewKeyedPRNG([]byte("ternary"))
	require.NoError(t, err)
	zero, one, negOne := field.Zero[field.CipherModulus](), field.One[field.CipherModulus](), field.NegOne[field.CipherModulus]()

	out := TernaryField[field.CipherModulus](p, 1000)
	for _, v := range out {
		require.True(t, v.Equal(zero) || v.Equal(one) || v.Equal(negOne), "unexpected ternary value %d", v.Get())
	}
}

func TestBinaryFieldOnlyTakesTwoValues(t *testing.T) {
	p, err := NewKeyedPRNG([]byte("binary"))
	require.NoError(t, err)
	zero, one := field.Zero[field.CipherModulus](), field.One[field.CipherModulus]()

	out := BinaryField[field.CipherModulus](p, 1000)
	for _, v := range out {
		require.True(t, v.Equal(zero) || v.Equal(one))
	}
}

func TestUniformFieldStaysBelowModulus(t *testing.T) {
	p, err := NewKeyedPRNG([]byte("field-uniform"))
	require.NoError(t, err)
	mod := field.Modulus_[field.CipherModulus]()

	out := UniformField[field.CipherModulus](p, 1000)
	for _, v := range out {
		require.Less(t, v.Get(), mod)
	}
}

func TestDiscreteGaussianSamplerValidation(t *testing.T) {
	_, err := NewDiscreteGaussianSampler(0, -1)
	require.ErrorIs(t, err, ErrDistribution)

	s, err := NewDiscreteGaussianSampler(0, 3.2)
	require.NoError(t, err)
	require.True(t, s.CBDEnabled(), "the bit-identical (0.0, 3.2) trigger should enable the CBD path")

	s2, err := NewDiscreteGaussianSampler(0, 4.0)
	require.NoError(t, err)
	require.False(t, s2.CBDEnabled())
}

func TestSampleGaussianStaysWithinFieldRange(t *testing.T) {
	p, err := NewKeyedPRNG([]byte("gaussian"))
	require.NoError(t, err)
	s, err := NewDiscreteGaussianSampler(0, 3.2)
	require.NoError(t, err)

	mod := field.Modulus_[field.CipherModulus]()
	out := SampleGaussian[field.CipherModulus](s, p, 1000)
	for _, v := range out {
		require.Less(t, v.Get(), mod)
	}
}

func TestNewCBDSamplerMatchesImplicitTrigger(t *testing.T) {
	implicit, err := NewDiscreteGaussianSampler(0, 3.2)
	require.NoError(t, err)
	explicit := NewCBDSampler()

	require.Equal(t, implicit.Mean(), explicit.Mean())
	require.Equal(t, implicit.StdDev(), explicit.StdDev())
	require.True(t, explicit.CBDEnabled())
}
