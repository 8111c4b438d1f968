package go_buffered_input

// IStore is the contract a backing store has to satisfy so a reader can
// window over it. A store is conceptually a large immutable byte object
// (a file, a network blob, a cache-fronted remote object) addressed by an
// internal cursor. The reader treats it as a purely passive byte source;
// it never opens, retries or closes the underlying handle.
type IStore interface {
	// Fetch fills p entirely with bytes starting at the store's current
	// cursor, advancing the cursor by len(p).
	//
	// Fetch make sure that the error will be not nil, if fewer than len(p)
	// bytes are available. Partial fills are never silently accepted.
	Fetch(p []byte) error

	// Reposition moves the store's cursor to the absolute offset off.
	// No data transfer is performed.
	Reposition(off int64) error

	// Length returns the total addressable byte length of the store.
	// It must not change for the lifetime of a reader bound to it.
	Length() int64
}

// IForkableStore is implemented by stores that can derive an additional
// independent cursor over the same underlying object. Clone relies on it
// to hand every clone its own cursor while still sharing the handle.
type IForkableStore interface {
	IStore

	// Fork returns a store view over the same underlying object with an
	// independent cursor. The underlying object is shared, not copied.
	Fork() IStore
}

// IBufferedInput is a buffered, seekable reader over an IStore. All reads
// are little-endian. A reader is single-threaded; callers that need
// concurrent access must Clone one reader per consumer.
type IBufferedInput interface {
	IRandomAccessInput

	// ReadByte returns the next byte, refilling the window when it is
	// exhausted.
	ReadByte() (byte, error)

	// ReadBytes fills p entirely from the current position. When useBuffer
	// is false, or p is larger than the window, the remainder bypasses the
	// window and is fetched from the store directly.
	ReadBytes(p []byte, useBuffer bool) error

	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)

	// ReadVInt reads a variable-length 32 bit integer: base-128, low 7 bits
	// of each byte are payload, a set high bit means more bytes follow.
	// At most 5 bytes; only the low 4 bits of a 5th byte may be used.
	ReadVInt() (int32, error)

	// ReadVLong reads a variable-length 64 bit integer, at most 9 bytes.
	ReadVLong() (int64, error)

	// Position returns the current logical offset in the store.
	Position() int64

	// Seek sets the position of the next read. Seeking within the buffered
	// window performs no I/O; seeking outside it is lazy, the window is
	// refilled on the next read.
	Seek(pos int64) error

	// Clone returns an independent reader over the same store, positioned
	// at the source's current position. Clones never share buffer memory.
	Clone() IBufferedInput

	BufferSize() int

	// Release returns the buffer memory to the pool. It does not close the
	// backing store. The reader must not be used afterwards.
	Release()
}

// IRandomAccessInput reads fixed-width values at absolute offsets without
// disturbing the sequential read position beyond what window reloading
// implies.
type IRandomAccessInput interface {
	ReadByteAt(pos int64) (byte, error)
	ReadUint16At(pos int64) (uint16, error)
	ReadUint32At(pos int64) (uint32, error)
	ReadUint64At(pos int64) (uint64, error)
}
