// Package buffer implements the fixed-width, big-endian binary codec
// used by ciphertext and key serialization. It writes no length
// prefixes itself; callers that need them write them explicitly.
package buffer

import "encoding/binary"

// Buffer is a growable byte cursor supporting big-endian writes at the
// tail and reads from the head.
type Buffer struct {
	data []byte
}

// New wraps b; writes append, reads consume from the front.
func New(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Bytes returns the buffer's remaining/accumulated content.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) WriteUint8(v uint8) {
	b.data = append(b.data, v)
}

func (b *Buffer) ReadUint8() uint8 {
	v := b.data[0]
	b.data = b.data[1:]
	return v
}

func (b *Buffer) WriteUint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) ReadUint32() uint32 {
	v := binary.BigEndian.Uint32(b.data[:4])
	b.data = b.data[4:]
	return v
}

func (b *Buffer) WriteUint64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

func (b *Buffer) ReadUint64() uint64 {
	v := binary.BigEndian.Uint64(b.data[:8])
	b.data = b.data[8:]
	return v
}

func (b *Buffer) WriteUint64Slice(s []uint64) {
	for _, v := range s {
		b.WriteUint64(v)
	}
}

func (b *Buffer) ReadUint64Slice(s []uint64) {
	for i := range s {
		s[i] = b.ReadUint64()
	}
}

// WriteUint32Slice writes the values of s as consecutive 4-byte
// big-endian words, with no length prefix; the layout used by
// ciphertext coefficient vectors (each field element fits in 32 bits
// for the moduli this module uses).
func (b *Buffer) WriteUint32Slice(s []uint32) {
	for _, v := range s {
		b.WriteUint32(v)
	}
}

func (b *Buffer) ReadUint32Slice(s []uint32) {
	for i := range s {
		s[i] = b.ReadUint32()
	}
}
