package bfv

import (
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/ntt"
	"github.com/pado-labs/threshold-zk-lhe/rng"
)

// Context owns the per-session RNG, error sampler, and NTT table that
// every KeyGen/Encrypt/Decrypt call on this ring draws from. Not safe
// to share across goroutines: callers must ensure exclusive borrow for
// the duration of a sample batch. Grounded on
// original_source/bfv/src/context.rs's BFVContext.
type Context[M field.Modulus] struct {
	params  Parameters
	prng    *rng.KeyedPRNG
	sampler *rng.DiscreteGaussianSampler
	table   *ntt.Table[M]
}

// NewContext constructs a Context seeded from the operating system's
// entropy source, with a discrete Gaussian error sampler at
// (mean=0, std_dev=params.Sigma()).
func NewContext[M field.Modulus](params Parameters) (*Context[M], error) {
	return NewContextWithSeed[M](params, nil)
}

// NewContextWithSeed is NewContext with an explicit PRNG seed, for
// reproducible test vectors and deterministic multi-party setup.
func NewContextWithSeed[M field.Modulus](params Parameters, seed []byte) (*Context[M], error) {
	p, err := rng.NewKeyedPRNG(seed)
	if err != nil {
		return nil, err
	}
	sampler, err := rng.NewDiscreteGaussianSampler(0.0, params.Sigma())
	if err != nil {
		return nil, err
	}
	table, err := ntt.GetTable[M](params.LogN(), p.UniformRange)
	if err != nil {
		return nil, err
	}
	return &Context[M]{params: params, prng: p, sampler: sampler, table: table}, nil
}

func (c *Context[M]) N() int                          { return c.params.N() }
func (c *Context[M]) Params() Parameters               { return c.params }
func (c *Context[M]) Table() *ntt.Table[M]             { return c.table }
func (c *Context[M]) PRNG() *rng.KeyedPRNG             { return c.prng }
func (c *Context[M]) Sampler() *rng.DiscreteGaussianSampler { return c.sampler }
