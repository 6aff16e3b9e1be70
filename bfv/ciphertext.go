package bfv

import (
	"github.com/pado-labs/threshold-zk-lhe/buffer"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/ringpoly"
)

// Ciphertext is a BFV ciphertext (c0, c1) over R_q. Grounded on
// original_source/bfv/src/ciphertext.rs's BFVCiphertext.
type Ciphertext[M field.Modulus] struct {
	C0, C1 *ringpoly.Poly[M]
}

// ZeroCiphertext returns the additive identity ciphertext of degree n.
func ZeroCiphertext[M field.Modulus](n int) *Ciphertext[M] {
	return &Ciphertext[M]{C0: ringpoly.NewPoly[M](n), C1: ringpoly.NewPoly[M](n)}
}

// Add returns the coefficient-wise sum of two ciphertexts.
func (c *Ciphertext[M]) Add(o *Ciphertext[M]) *Ciphertext[M] {
	return &Ciphertext[M]{C0: c.C0.Add(o.C0), C1: c.C1.Add(o.C1)}
}

// ScalarMul lifts alpha from F_t to F_q by integer value (safe since
// t < q) and multiplies every ciphertext coordinate by it.
func ScalarMul[M field.Modulus](alpha field.Plain, ct *Ciphertext[M]) *Ciphertext[M] {
	s := field.New[M](alpha.Get())
	return &Ciphertext[M]{C0: ct.C0.ScalarMul(s), C1: ct.C1.ScalarMul(s)}
}

// InnerProduct folds cts[i]*alphas[i] with a zero-ciphertext
// accumulator using Add and ScalarMul.
func InnerProduct[M field.Modulus](cts []*Ciphertext[M], alphas []field.Plain) *Ciphertext[M] {
	acc := ZeroCiphertext[M](cts[0].C0.N())
	for i, ct := range cts {
		acc = acc.Add(ScalarMul(alphas[i], ct))
	}
	return acc
}

// ToBytes serializes the ciphertext as two length-prefixed (4-byte
// big-endian each), big-endian-4-byte-per-coefficient polynomial
// vectors: |len0,len1|data0,data1|.
func (ct *Ciphertext[M]) ToBytes() []byte {
	b := buffer.New(nil)
	b.WriteUint32(uint32(len(ct.C0.Coeffs)))
	b.WriteUint32(uint32(len(ct.C1.Coeffs)))
	for _, c := range ct.C0.Coeffs {
		b.WriteUint32(uint32(c.Get()))
	}
	for _, c := range ct.C1.Coeffs {
		b.WriteUint32(uint32(c.Get()))
	}
	return b.Bytes()
}

// CiphertextFromBytes is the inverse of Ciphertext.ToBytes.
func CiphertextFromBytes[M field.Modulus](data []byte) *Ciphertext[M] {
	b := buffer.New(data)
	n0 := int(b.ReadUint32())
	n1 := int(b.ReadUint32())
	c0 := make([]field.Element[M], n0)
	for i := range c0 {
		c0[i] = field.New[M](uint64(b.ReadUint32()))
	}
	c1 := make([]field.Element[M], n1)
	for i := range c1 {
		c1[i] = field.New[M](uint64(b.ReadUint32()))
	}
	return &Ciphertext[M]{C0: ringpoly.NewPolyFromCoeffs(c0), C1: ringpoly.NewPolyFromCoeffs(c1)}
}
