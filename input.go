package go_buffered_input

import (
	"encoding/binary"
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-bytesbufferpool/predictable_size"
)

// bufPool recycles window arenas across readers and their clones.
var bufPool = predictable_size.NewPredictablePool()

// New creates a reader over the given store. The store handle is borrowed,
// never owned; the caller keeps the responsibility of closing it.
func New(store IStore, opts ...OptionFn) (*BufferedInput, error) {
	in := &BufferedInput{
		store:      store,
		bufferSize: DefaultBufferSize,
	}
	for _, o := range opts {
		o(in)
	}
	if in.bufferSize < MinBufferSize {
		return nil, fmt.Errorf("%w: must be at least %d (got %d)", ErrInvalidBufferSize, MinBufferSize, in.bufferSize)
	}
	return in, nil
}

// Core functions \\

func (in *BufferedInput) ReadByte() (byte, error) {
	if in.bufPos >= in.bufLimit {
		if err := in.refill(); err != nil {
			return 0, err
		}
	}
	b := in.buf[in.bufPos]
	in.bufPos++
	return b, nil
}

func (in *BufferedInput) ReadBytes(p []byte, useBuffer bool) error {
	available := in.bufLimit - in.bufPos
	if len(p) <= available {
		// the window contains enough data to satisfy this request
		copy(p, in.buf[in.bufPos:in.bufPos+len(p)])
		in.bufPos += len(p)
		return nil
	}

	// the window does not have enough data, first serve all we've got
	if available > 0 {
		copy(p, in.buf[in.bufPos:in.bufLimit])
		in.bufPos = in.bufLimit
		p = p[available:]
	}

	if useBuffer && len(p) < in.bufferSize {
		// the remainder is small enough to go through the window in the
		// usual buffered way
		if err := in.refill(); err != nil {
			return err
		}
		if in.bufLimit < len(p) {
			// refill could not load len(p) bytes
			copy(p, in.buf[:in.bufLimit])
			in.bufPos = in.bufLimit
			return fmt.Errorf("%w: %d bytes short at offset %d", ErrEndOfData, len(p)-in.bufLimit, in.Position())
		}
		copy(p, in.buf[:len(p)])
		in.bufPos = len(p)
		return nil
	}

	// the remainder is larger than the window, or buffering was declined;
	// fetch it from the store in one go. There is no need to re-read what
	// the window already held, so no reposition either.
	after := in.bufStart + int64(in.bufPos) + int64(len(p))
	if after > in.store.Length() {
		return fmt.Errorf("%w: read [%d, %d) of %d", ErrEndOfData, in.Position(), after, in.store.Length())
	}
	if in.buf == nil {
		// the store cursor was never synced for this reader, refill's lazy
		// allocation normally does that
		if err := in.store.Reposition(in.bufStart); err != nil {
			return err
		}
	}
	if err := in.store.Fetch(p); err != nil {
		return err
	}
	in.bufStart = after
	in.bufPos = 0
	in.bufLimit = 0 // trigger refill() on the next read
	return nil
}

func (in *BufferedInput) ReadUint16() (uint16, error) {
	if in.bufLimit-in.bufPos >= 2 {
		v := binary.LittleEndian.Uint16(in.buf[in.bufPos:])
		in.bufPos += 2
		return v, nil
	}
	v, err := in.readLittleEndian(2)
	return uint16(v), err
}

func (in *BufferedInput) ReadUint32() (uint32, error) {
	if in.bufLimit-in.bufPos >= 4 {
		v := binary.LittleEndian.Uint32(in.buf[in.bufPos:])
		in.bufPos += 4
		return v, nil
	}
	v, err := in.readLittleEndian(4)
	return uint32(v), err
}

func (in *BufferedInput) ReadUint64() (uint64, error) {
	if in.bufLimit-in.bufPos >= 8 {
		v := binary.LittleEndian.Uint64(in.buf[in.bufPos:])
		in.bufPos += 8
		return v, nil
	}
	return in.readLittleEndian(8)
}

// readLittleEndian is the byte-by-byte fallback for fixed-width reads that
// straddle a window boundary. It is bit-identical to the fast paths.
func (in *BufferedInput) readLittleEndian(width int) (uint64, error) {
	var v uint64
	for shift := 0; shift < width*8; shift += 8 {
		b, err := in.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b) << shift
	}
	return v, nil
}

// refill slides the window forward to the current logical position and
// loads it from the store. After a successful refill at least one byte is
// readable. The store cursor is already at the new window start whenever
// refill is reached, except before the first allocation, where the store
// was never repositioned for this reader.
func (in *BufferedInput) refill() error {
	start := in.bufStart + int64(in.bufPos)
	end := min(start+int64(in.bufferSize), in.store.Length())
	newLen := int(end - start)
	if newLen <= 0 {
		return fmt.Errorf("%w: refill at offset %d of %d", ErrEndOfData, start, in.store.Length())
	}

	if in.buf == nil {
		in.buf = bufPool.Get(in.bufferSize)[:in.bufferSize]
		if err := in.store.Reposition(in.bufStart); err != nil {
			return err
		}
	}

	in.bufStart = start
	in.bufPos = 0
	in.bufLimit = 0
	if err := in.store.Fetch(in.buf[:newLen]); err != nil {
		// the window stays empty, never partially valid
		return err
	}
	in.bufLimit = newLen
	return nil
}

// Cursor & lifecycle \\

// Position returns the current logical offset in the store.
func (in *BufferedInput) Position() int64 {
	return in.bufStart + int64(in.bufPos)
}

func (in *BufferedInput) Seek(pos int64) error {
	if pos >= in.bufStart && pos < in.bufStart+int64(in.bufLimit) {
		// seek within the window
		in.bufPos = int(pos - in.bufStart)
		return nil
	}
	in.bufStart = pos
	in.bufPos = 0
	in.bufLimit = 0 // trigger refill() on the next read
	return in.store.Reposition(pos)
}

func (in *BufferedInput) Clone() IBufferedInput {
	store := in.store
	if f, ok := store.(IForkableStore); ok {
		store = f.Fork()
	}
	return &BufferedInput{
		store:      store,
		bufferSize: in.bufferSize,
		bufStart:   in.Position(),
	}
}

func (in *BufferedInput) BufferSize() int {
	return in.bufferSize
}

func (in *BufferedInput) Release() {
	if in.buf == nil {
		return
	}
	bufPool.Put(in.buf)
	in.buf = nil
	in.bufPos = 0
	in.bufLimit = 0
}

var _ IBufferedInput = (*BufferedInput)(nil)
