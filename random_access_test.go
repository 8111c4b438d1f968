package go_buffered_input

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadAt(t *testing.T) {
	data := generateBytes(128)
	in, err := New(NewMemStore(data), WithBufferSize(16))
	require.NoError(t, err)

	// forward and backward jumps, window hits and misses
	for _, pos := range []int64{0, 1, 7, 8, 100, 60, 13, 120, 3} {
		b, err := in.ReadByteAt(pos)
		require.NoError(t, err)
		assert.Equal(t, data[pos], b, "byte at %d", pos)

		v16, err := in.ReadUint16At(pos)
		require.NoError(t, err)
		assert.Equal(t, binary.LittleEndian.Uint16(data[pos:]), v16, "uint16 at %d", pos)

		v32, err := in.ReadUint32At(pos)
		require.NoError(t, err)
		assert.Equal(t, binary.LittleEndian.Uint32(data[pos:]), v32, "uint32 at %d", pos)

		v64, err := in.ReadUint64At(pos)
		require.NoError(t, err)
		assert.Equal(t, binary.LittleEndian.Uint64(data[pos:]), v64, "uint64 at %d", pos)
	}
}

// A tight backward scan must reload at most once per window-worth of
// movement, not once per access.
func Test_BackwardScanLocality(t *testing.T) {
	const bufferSize = 64
	data := generateBytes(256)
	store := &countingStore{IStore: NewMemStore(data)}
	in, err := New(store, WithBufferSize(bufferSize))
	require.NoError(t, err)

	for pos := int64(len(data) - 4); pos >= 0; pos -= 4 {
		got, err := in.ReadUint32At(pos)
		require.NoError(t, err)
		require.Equal(t, binary.LittleEndian.Uint32(data[pos:]), got)
	}

	// one load for the initial window at the tail, then one per page of
	// backward movement
	assert.LessOrEqual(t, store.fetches, 1+len(data)/bufferSize)
}

func Test_ForwardJumpResetsWindow(t *testing.T) {
	data := generateBytes(256)
	store := &countingStore{IStore: NewMemStore(data)}
	in, err := New(store, WithBufferSize(64))
	require.NoError(t, err)

	b, err := in.ReadByteAt(0)
	require.NoError(t, err)
	assert.Equal(t, data[0], b)
	assert.Equal(t, 1, store.fetches)

	// a forward jump restarts the window at pos
	b, err = in.ReadByteAt(200)
	require.NoError(t, err)
	assert.Equal(t, data[200], b)
	assert.Equal(t, 2, store.fetches)

	// nearby positions behind it are served by the backward heuristic with
	// a single reload
	v, err := in.ReadUint64At(150)
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian.Uint64(data[150:]), v)
	assert.Equal(t, 3, store.fetches)
}

func Test_ReadAtPastEnd(t *testing.T) {
	data := generateBytes(32)
	in, err := New(NewMemStore(data), WithBufferSize(MinBufferSize))
	require.NoError(t, err)

	_, err = in.ReadByteAt(32)
	require.ErrorIs(t, err, ErrEndOfData)

	// pos is in range but width is not
	_, err = in.ReadUint32At(30)
	require.ErrorIs(t, err, ErrEndOfData)

	// same for a backward jump into a partial window at the tail
	_, err = in.ReadByteAt(31)
	require.NoError(t, err)
	_, err = in.ReadUint64At(29)
	require.ErrorIs(t, err, ErrEndOfData)

	// the reader stays usable after a failed random access
	b, err := in.ReadByteAt(29)
	require.NoError(t, err)
	assert.Equal(t, data[29], b)
}
