package reduce

import "errors"

// ErrBitCount is returned when a modulus does not meet the headroom
// invariant required by Barrett construction (top two bits zero).
var ErrBitCount = errors.New("reduce: insufficient modulus headroom")

// ErrNoInverse is returned when a modular inverse is requested for a
// value that is not coprime to the modulus.
var ErrNoInverse = errors.New("reduce: value has no modular inverse")
