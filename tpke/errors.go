package tpke

import "errors"

// ErrBadThresholdPolicy is returned when a ThresholdPolicy's
// parameters are inconsistent (wrong indices length, a zero index,
// threshold exceeding total, or total exceeding MaxNodes).
var ErrBadThresholdPolicy = errors.New("tpke: invalid threshold policy")

// ErrShareState is returned when a share-ciphertext is passed to an
// operation that requires a different point in its Fresh ->
// Re-encrypted -> Combined -> Decrypted lifecycle.
var ErrShareState = errors.New("tpke: share used from an invalid state")
