package go_buffered_input

import (
	"encoding/binary"
	"fmt"
)

// resolve maps the absolute offset pos to an index into the window,
// reloading the window when it does not cover width bytes at pos.
func (in *BufferedInput) resolve(pos int64, width int) (int, error) {
	index := pos - in.bufStart
	if index >= 0 && index <= int64(in.bufLimit-width) {
		return int(index), nil
	}

	if index < 0 {
		// moving backwards: fill up the previous page rather than starting
		// again at pos, so that successive backward reads do not reload the
		// same data over and over. The lower bound keeps width bytes at pos
		// inside the new window.
		start := max(in.bufStart-int64(in.bufferSize), pos+int64(width)-int64(in.bufferSize))
		start = max(start, 0)
		in.bufStart = min(start, pos)
	} else {
		// moving forwards: reset the window to start at pos
		in.bufStart = pos
	}

	in.bufPos = 0
	in.bufLimit = 0 // trigger refill() on read
	if err := in.store.Reposition(in.bufStart); err != nil {
		return 0, err
	}
	if err := in.refill(); err != nil {
		return 0, err
	}

	index = pos - in.bufStart
	if index+int64(width) > int64(in.bufLimit) {
		// the window ends at the store's length, pos+width does not fit
		return 0, fmt.Errorf("%w: read [%d, %d) of %d", ErrEndOfData, pos, pos+int64(width), in.store.Length())
	}
	return int(index), nil
}

func (in *BufferedInput) ReadByteAt(pos int64) (byte, error) {
	index, err := in.resolve(pos, 1)
	if err != nil {
		return 0, err
	}
	return in.buf[index], nil
}

func (in *BufferedInput) ReadUint16At(pos int64) (uint16, error) {
	index, err := in.resolve(pos, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(in.buf[index:]), nil
}

func (in *BufferedInput) ReadUint32At(pos int64) (uint32, error) {
	index, err := in.resolve(pos, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(in.buf[index:]), nil
}

func (in *BufferedInput) ReadUint64At(pos int64) (uint64, error) {
	index, err := in.resolve(pos, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(in.buf[index:]), nil
}
