package ntt

import "errors"

// ErrNoPrimitiveRoot is returned when p is not congruent to 1 mod 2N,
// or when 100 random search trials fail to find a primitive 2N-th
// root of unity.
var ErrNoPrimitiveRoot = errors.New("ntt: no primitive root found")

// ErrNTTTable is returned when concurrent table initialization fails
// to publish a new table for a (field, log_n) pair.
var ErrNTTTable = errors.New("ntt: table initialization failed")
