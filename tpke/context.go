package tpke

import (
	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
)

// Context bundles the policy with the single-modulus BFV context every
// node and the recipient share. Grounded on
// original_source/bfv/src/tpke.rs's ThresholdPKEContext.
type Context struct {
	bfvCtx *bfv.Context[field.CipherModulus]
	policy *ThresholdPolicy
}

// NewContext builds a Context for the given (n, k) policy over the
// reference BFV parameter set.
func NewContext(totalNumber, thresholdNumber int, indices []field.Plain) (*Context, error) {
	policy, err := NewThresholdPolicy(totalNumber, thresholdNumber, indices)
	if err != nil {
		return nil, err
	}
	params, err := bfv.NewParametersFromLiteral(bfv.DefaultParametersLiteral)
	if err != nil {
		return nil, err
	}
	bfvCtx, err := bfv.NewContext[field.CipherModulus](params)
	if err != nil {
		return nil, err
	}
	return &Context{bfvCtx: bfvCtx, policy: policy}, nil
}

func (c *Context) BFVContext() *bfv.Context[field.CipherModulus] { return c.bfvCtx }
func (c *Context) Policy() *ThresholdPolicy                      { return c.policy }
