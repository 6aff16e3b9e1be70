package tpke

import (
	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
)

// ShareState is a share-ciphertext's position in its lifecycle.
// Grounded on spec.md's state machine: Fresh -> Re-encrypted ->
// Combined -> Decrypted.
type ShareState int

const (
	Fresh ShareState = iota
	ReEncrypted
	Combined
	Decrypted
)

func (s ShareState) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case ReEncrypted:
		return "re-encrypted"
	case Combined:
		return "combined"
	case Decrypted:
		return "decrypted"
	default:
		return "unknown"
	}
}

// Share is a single node's BFV ciphertext carrying one Shamir share,
// tagged with its node index and lifecycle state. The index travels as
// metadata beside the ciphertext, never encoded into it.
type Share struct {
	Ciphertext *bfv.Ciphertext[field.CipherModulus]
	NodeIndex  field.Plain
	State      ShareState
}
