package field

// CipherModulus names the reference 27-bit ciphertext prime
// q = 132120577 (p-1 divisible by 2N for N up to 1024), grounded on
// original_source/bfv/src/ciphertext.rs's `#[modulus = 132120577]`.
type CipherModulus struct{}

func (CipherModulus) P() uint64 { return 132120577 }

// PlainModulus names the reference plaintext prime t = 61, grounded on
// original_source/bfv/src/plaintext.rs's `#[modulus = 61]`.
type PlainModulus struct{}

func (PlainModulus) P() uint64 { return 61 }

// Cipher and Plain are the two field element instantiations used
// throughout bfv and tpke.
type Cipher = Element[CipherModulus]
type Plain = Element[PlainModulus]
