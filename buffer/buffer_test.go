package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint8RoundTrip(t *testing.T) {
	b := New(nil)
	b.WriteUint8(0x42)
	require.Equal(t, []byte{0x42}, b.Bytes())
	require.Equal(t, uint8(0x42), New(b.Bytes()).ReadUint8())
}

func TestUint32BigEndian(t *testing.T) {
	b := New(nil)
	b.WriteUint32(0x11223344)
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, b.Bytes())
	require.Equal(t, uint32(0x11223344), New(b.Bytes()).ReadUint32())
}

func TestUint64BigEndian(t *testing.T) {
	b := New(nil)
	b.WriteUint64(0x1122334455667788)
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, b.Bytes())
	require.Equal(t, uint64(0x1122334455667788), New(b.Bytes()).ReadUint64())
}

func TestUint64SliceRoundTrip(t *testing.T) {
	in := []uint64{1, 2, 3, 0xFFFFFFFFFFFFFFFF}
	b := New(nil)
	b.WriteUint64Slice(in)

	out := make([]uint64, len(in))
	New(b.Bytes()).ReadUint64Slice(out)
	require.Equal(t, in, out)
}

func TestMixedSequentialReads(t *testing.T) {
	b := New(nil)
	b.WriteUint8(1)
	b.WriteUint32(2)
	b.WriteUint64(3)

	r := New(b.Bytes())
	require.Equal(t, uint8(1), r.ReadUint8())
	require.Equal(t, uint32(2), r.ReadUint32())
	require.Equal(t, uint64(3), r.ReadUint64())
}
