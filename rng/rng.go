// Package rng implements the keyed pseudorandom stream backing every
// sampler in this module: a ChaCha20 counter-mode cipher seeded from
// arbitrary-length material via BLAKE3, plus the uniform, binary,
// ternary, centered-binomial, and discrete-Gaussian field-element
// distributions layered on top of it. Grounded on
// original_source/algebra/src/random.rs and
// original_source/algebra/src/utils/sample.rs.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
)

// ErrDistribution is returned when a distribution is constructed with
// invalid parameters (negative standard deviation, max <= std_dev).
var ErrDistribution = errors.New("rng: invalid distribution parameters")

// KeyedPRNG is a deterministic, cryptographically strong byte stream:
// identical seeds produce identical output, enabling reproducible
// coin-tossing across distributed parties.
type KeyedPRNG struct {
	key    [32]byte
	cipher *chacha20.Cipher
}

// NewKeyedPRNG derives a 256-bit ChaCha20 key from seed via BLAKE3. A
// nil seed draws fresh entropy from the operating system.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	var key [32]byte
	if seed == nil {
		if _, err := rand.Read(key[:]); err != nil {
			return nil, err
		}
	} else {
		key = blake3.Sum256(seed)
	}
	p := &KeyedPRNG{key: key}
	if err := p.Reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset rewinds the stream back to its first keystream byte.
func (p *KeyedPRNG) Reset() error {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(p.key[:], nonce[:])
	if err != nil {
		return err
	}
	p.cipher = c
	return nil
}

// Read fills buf with keystream bytes; it never returns a short read.
func (p *KeyedPRNG) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0
	}
	p.cipher.XORKeyStream(buf, buf)
	return len(buf), nil
}

// Uint64 draws a uniformly random 64-bit word.
func (p *KeyedPRNG) Uint64() uint64 {
	var b [8]byte
	_, _ = p.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Uint32 draws a uniformly random 32-bit word.
func (p *KeyedPRNG) Uint32() uint32 {
	var b [4]byte
	_, _ = p.Read(b[:])
	return binary.BigEndian.Uint32(b[:])
}

// UniformRange returns a value sampled uniformly from [lo, hi] by
// rejection sampling over the smallest covering power-of-two mask,
// matching the RandRange contract required by ntt.NewTable and
// reduce.ProbablyPrime.
func (p *KeyedPRNG) UniformRange(lo, hi uint64) uint64 {
	if lo >= hi {
		return lo
	}
	span := hi - lo
	var mask uint64 = 1
	for mask <= span {
		mask = mask<<1 | 1
	}
	for {
		v := p.Uint64() & mask
		if v <= span {
			return lo + v
		}
	}
}
