// Package hybrid implements the hybrid-encryption wrapper for
// arbitrary-length payloads named by spec.md's BFV/threshold-PKE
// component: a 256-bit symmetric key carried through the low-order
// coefficients of a BFV plaintext polynomial and threshold-encrypted,
// paired with a ChaCha20-Poly1305 AEAD seal of the payload under that
// key. The AEAD is treated as an opaque collaborator: only its key,
// nonce, and Seal/Open contracts matter here.
package hybrid

import (
	"crypto/rand"
	"fmt"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/tpke"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeyBits is the width of the symmetric key carried through the
// plaintext polynomial's low-order coefficients.
const KeyBits = 256

// EncryptedPayload bundles the threshold-encrypted key shares with the
// AEAD-sealed payload.
type EncryptedPayload struct {
	KeyShares  []*tpke.Share
	Nonce      []byte
	Ciphertext []byte
}

// Encrypt draws a fresh 256-bit key (derived via BLAKE3 over raw
// entropy, for domain separation from any other BLAKE3 use in this
// module), threshold-encrypts it under ctx's policy, and seals payload
// under the key with a fresh nonce.
func Encrypt(ctx *tpke.Context, pks []*bfv.PublicKey[field.CipherModulus], payload []byte) (*EncryptedPayload, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	key := deriveKey(seed)

	pt := keyToPlaintext(key, ctx.BFVContext().N())
	shares, err := tpke.Encrypt(ctx, pks, pt)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ciphertext := aead.Seal(nil, nonce, payload, nil)

	return &EncryptedPayload{KeyShares: shares, Nonce: nonce, Ciphertext: ciphertext}, nil
}

// Decrypt reconstructs the symmetric key from a recovered plaintext
// polynomial (the result of Combine followed by tpke.Decrypt) and
// opens the payload.
func Decrypt(pt *bfv.Plaintext, ep *EncryptedPayload) ([]byte, error) {
	key := plaintextToKey(pt)
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	payload, err := aead.Open(nil, ep.Nonce, ep.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("hybrid: AEAD open failed: %w", err)
	}
	return payload, nil
}

func deriveKey(seed [32]byte) [32]byte {
	h := blake3.New()
	h.Write(seed[:])
	h.Write([]byte("threshold-zk-lhe/hybrid-key"))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func keyToPlaintext(key [32]byte, n int) *bfv.Plaintext {
	pt := bfv.NewPlaintext(n)
	for i := 0; i < KeyBits; i++ {
		bit := (key[i/8] >> uint(i%8)) & 1
		pt.Poly[i] = field.New[field.PlainModulus](uint64(bit))
	}
	return pt
}

func plaintextToKey(pt *bfv.Plaintext) [32]byte {
	var key [32]byte
	for i := 0; i < KeyBits; i++ {
		bit := pt.Poly[i].Get() & 1
		key[i/8] |= byte(bit) << uint(i%8)
	}
	return key
}
