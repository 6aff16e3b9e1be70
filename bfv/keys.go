package bfv

import (
	"github.com/pado-labs/threshold-zk-lhe/buffer"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/ringpoly"
)

// SecretKey holds the ternary secret polynomial s. Grounded on
// original_source/bfv/src/secretkey.rs's BFVSecretKey.
type SecretKey[M field.Modulus] struct {
	S *ringpoly.Poly[M]
}

// PublicKey holds (b, -a) with b = a*s + e. Grounded on
// original_source/bfv/src/publickey.rs's BFVPublicKey.
type PublicKey[M field.Modulus] struct {
	B, NegA *ringpoly.Poly[M]
}

// ToBytes serializes the secret key as a raw big-endian coefficient
// stream, with no length prefix: the degree is always the context's N.
func (sk *SecretKey[M]) ToBytes() []byte {
	b := buffer.New(nil)
	for _, c := range sk.S.Coeffs {
		b.WriteUint32(uint32(c.Get()))
	}
	return b.Bytes()
}

// SecretKeyFromBytes is the inverse of SecretKey.ToBytes.
func SecretKeyFromBytes[M field.Modulus](data []byte) *SecretKey[M] {
	n := len(data) / 4
	b := buffer.New(data)
	coeffs := make([]field.Element[M], n)
	for i := range coeffs {
		coeffs[i] = field.New[M](uint64(b.ReadUint32()))
	}
	return &SecretKey[M]{S: ringpoly.NewPolyFromCoeffs(coeffs)}
}

// ToBytes serializes the public key as two length-prefixed, big-endian
// coefficient vectors, mirroring Ciphertext.ToBytes's layout.
func (pk *PublicKey[M]) ToBytes() []byte {
	b := buffer.New(nil)
	b.WriteUint32(uint32(len(pk.B.Coeffs)))
	b.WriteUint32(uint32(len(pk.NegA.Coeffs)))
	for _, c := range pk.B.Coeffs {
		b.WriteUint32(uint32(c.Get()))
	}
	for _, c := range pk.NegA.Coeffs {
		b.WriteUint32(uint32(c.Get()))
	}
	return b.Bytes()
}

// PublicKeyFromBytes is the inverse of PublicKey.ToBytes.
func PublicKeyFromBytes[M field.Modulus](data []byte) *PublicKey[M] {
	b := buffer.New(data)
	n0 := int(b.ReadUint32())
	n1 := int(b.ReadUint32())
	bCoeffs := make([]field.Element[M], n0)
	for i := range bCoeffs {
		bCoeffs[i] = field.New[M](uint64(b.ReadUint32()))
	}
	aCoeffs := make([]field.Element[M], n1)
	for i := range aCoeffs {
		aCoeffs[i] = field.New[M](uint64(b.ReadUint32()))
	}
	return &PublicKey[M]{B: ringpoly.NewPolyFromCoeffs(bCoeffs), NegA: ringpoly.NewPolyFromCoeffs(aCoeffs)}
}
