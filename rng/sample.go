package rng

import (
	"math"
	"math/bits"

	"github.com/pado-labs/threshold-zk-lhe/field"
)

// UniformField draws n field elements uniformly from [0, p) by
// rejection sampling each against the field's own modulus.
func UniformField[M field.Modulus](p *KeyedPRNG, n int) []field.Element[M] {
	mod := field.Modulus_[M]()
	out := make([]field.Element[M], n)
	for i := range out {
		out[i] = field.New[M](p.UniformRange(0, mod-1))
	}
	return out
}

// BinaryField draws n field elements from {0,1}, prob[1]=prob[0]=0.5,
// one bit per element packed 32-to-a-word. Grounded on
// sample_binary_field_vec.
func BinaryField[M field.Modulus](p *KeyedPRNG, n int) []field.Element[M] {
	out := make([]field.Element[M], n)
	var r uint32
	for i := 0; i < n; i++ {
		if i%32 == 0 {
			r = p.Uint32()
		}
		if r&1 == 1 {
			out[i] = field.One[M]()
		} else {
			out[i] = field.Zero[M]()
		}
		r >>= 1
	}
	return out
}

// TernaryField draws n field elements from {-1,0,1}, prob[0]=0.5,
// prob[1]=prob[-1]=0.25, two bits per element packed 16-to-a-word.
// Grounded on sample_ternary_field_vec.
func TernaryField[M field.Modulus](p *KeyedPRNG, n int) []field.Element[M] {
	out := make([]field.Element[M], n)
	var r uint32
	for i := 0; i < n; i++ {
		if i%16 == 0 {
			r = p.Uint32()
		}
		switch r & 0b11 {
		case 2:
			out[i] = field.One[M]()
		case 3:
			out[i] = field.NegOne[M]()
		default:
			out[i] = field.Zero[M]()
		}
		r >>= 2
	}
	return out
}

// CBDField draws n field elements from the centered binomial
// distribution with eta=21 (the fixed width used throughout the
// reference scheme, approximating N(0, 3.2^2)). Grounded on
// sample_cbd_field_vec.
func CBDField[M field.Modulus](p *KeyedPRNG, n int) []field.Element[M] {
	return cbdField[M](p, n, 21)
}

// cbdField draws n field elements from a centered binomial
// distribution of half-width eta bits: two eta-bit unsigned integers
// a, b are drawn from the stream and the field element a-b (mod p) is
// returned, giving variance eta/2.
func cbdField[M field.Modulus](p *KeyedPRNG, n int, eta int) []field.Element[M] {
	mod := field.Modulus_[M]()
	nBytes := (eta + 7) / 8
	topMask := byte(0xFF)
	if r := eta % 8; r != 0 {
		topMask = byte(1<<uint(r) - 1)
	}

	out := make([]field.Element[M], n)
	buf := make([]byte, 2*nBytes)
	for i := range out {
		_, _ = p.Read(buf)
		buf[nBytes-1] &= topMask
		buf[2*nBytes-1] &= topMask

		var a, b int
		for _, by := range buf[:nBytes] {
			a += bits.OnesCount8(by)
		}
		for _, by := range buf[nBytes:] {
			b += bits.OnesCount8(by)
		}

		if a >= b {
			out[i] = field.New[M](uint64(a - b))
		} else {
			out[i] = field.New[M](mod - uint64(b-a))
		}
	}
	return out
}

// DiscreteGaussianSampler draws integers from N(mean, stdDev^2),
// rejecting samples beyond maxStdDev standard deviations, and maps the
// rounded result to a field element using the symmetric
// representative (negative values become p - |x|). Grounded on
// FieldDiscreteGaussianSampler in random.rs and ring/prng.go's
// ClockGaussian.
type DiscreteGaussianSampler struct {
	mean      float64
	stdDev    float64
	maxStdDev float64
	cbdEnable bool
}

// NewDiscreteGaussianSampler validates and constructs a sampler with
// max deviation fixed at 6*stdDev, matching FieldDiscreteGaussianSampler::new.
func NewDiscreteGaussianSampler(mean, stdDev float64) (*DiscreteGaussianSampler, error) {
	return NewDiscreteGaussianSamplerWithMax(mean, stdDev, stdDev*6.0)
}

// NewDiscreteGaussianSamplerWithMax validates and constructs a sampler
// with an explicit maximum deviation bound.
func NewDiscreteGaussianSamplerWithMax(mean, stdDev, maxStdDev float64) (*DiscreteGaussianSampler, error) {
	if stdDev < 0 || maxStdDev <= stdDev {
		return nil, ErrDistribution
	}
	return &DiscreteGaussianSampler{
		mean:      mean,
		stdDev:    stdDev,
		maxStdDev: maxStdDev,
		// cbdEnable mirrors FieldDiscreteGaussianSampler's bit-identical
		// mean==0.0 && std_dev==3.2 trigger, switching the sampling path
		// to the fast centered binomial approximation.
		cbdEnable: mean == 0.0 && stdDev == 3.2,
	}, nil
}

// NewCBDSampler is the explicit, non-implicit alternative to the
// bit-identical (mean, std_dev) == (0.0, 3.2) trigger above: callers
// that want the centered binomial approximation opt in by name instead
// of by floating-point coincidence.
func NewCBDSampler() *DiscreteGaussianSampler {
	return &DiscreteGaussianSampler{mean: 0, stdDev: 3.2, maxStdDev: 19.2, cbdEnable: true}
}

func (s *DiscreteGaussianSampler) Mean() float64      { return s.mean }
func (s *DiscreteGaussianSampler) StdDev() float64    { return s.stdDev }
func (s *DiscreteGaussianSampler) MaxStdDev() float64 { return s.maxStdDev }
func (s *DiscreteGaussianSampler) CBDEnabled() bool   { return s.cbdEnable }

// SampleGaussian draws n field elements from s. Go disallows generic
// methods, so the type parameter is carried on this free function
// instead of on *DiscreteGaussianSampler.
func SampleGaussian[M field.Modulus](s *DiscreteGaussianSampler, p *KeyedPRNG, n int) []field.Element[M] {
	if s.cbdEnable {
		return CBDField[M](p, n)
	}
	mod := field.Modulus_[M]()
	out := make([]field.Element[M], n)
	for i := range out {
		x := s.sampleBounded(p)
		coeff := uint64(math.Round(math.Abs(x)))
		if x >= 0 {
			out[i] = field.New[M](coeff % mod)
		} else {
			out[i] = field.New[M](mod - coeff%mod)
		}
	}
	return out
}

// sampleBounded draws a single continuous N(mean, stdDev^2) value via
// Box-Muller, re-sampling whenever it falls outside
// [mean-maxStdDev, mean+maxStdDev].
func (s *DiscreteGaussianSampler) sampleBounded(p *KeyedPRNG) float64 {
	for {
		u1 := p.uniformFloat()
		u2 := p.uniformFloat()
		if u1 <= 1e-300 {
			continue
		}
		r := math.Sqrt(-2 * math.Log(u1))
		x := s.mean + s.stdDev*r*math.Cos(2*math.Pi*u2)
		if math.Abs(x-s.mean) <= s.maxStdDev {
			return x
		}
	}
}

// uniformFloat returns a uniform value in [0, 1).
func (p *KeyedPRNG) uniformFloat() float64 {
	const mantissaBits = 53
	return float64(p.Uint64()>>(64-mantissaBits)) / float64(uint64(1)<<mantissaBits)
}
