package go_buffered_input

import "fmt"

// The fast paths below decode straight off the window without per-byte
// bounds checks; they are gated on the window holding the maximum encoded
// width (5 bytes for 32 bit, 9 bytes for 64 bit). The slow paths compose
// ReadByte and therefore survive window boundaries.

func (in *BufferedInput) ReadVInt() (int32, error) {
	if in.bufLimit-in.bufPos < 5 {
		return in.readVIntSlow()
	}
	b := in.buf[in.bufPos]
	in.bufPos++
	if b < 0x80 {
		return int32(b), nil
	}
	i := uint32(b & 0x7F)
	b = in.buf[in.bufPos]
	in.bufPos++
	i |= uint32(b&0x7F) << 7
	if b < 0x80 {
		return int32(i), nil
	}
	b = in.buf[in.bufPos]
	in.bufPos++
	i |= uint32(b&0x7F) << 14
	if b < 0x80 {
		return int32(i), nil
	}
	b = in.buf[in.bufPos]
	in.bufPos++
	i |= uint32(b&0x7F) << 21
	if b < 0x80 {
		return int32(i), nil
	}
	b = in.buf[in.bufPos]
	in.bufPos++
	// only the low 4 bits of the 5th byte carry payload
	i |= uint32(b&0x0F) << 28
	if b&0xF0 == 0 {
		return int32(i), nil
	}
	return 0, fmt.Errorf("%w: vInt with too many bits", ErrMalformedVarint)
}

func (in *BufferedInput) readVIntSlow() (int32, error) {
	b, err := in.ReadByte()
	if err != nil {
		return 0, err
	}
	if b < 0x80 {
		return int32(b), nil
	}
	i := uint32(b & 0x7F)
	for shift := 7; shift <= 21; shift += 7 {
		if b, err = in.ReadByte(); err != nil {
			return 0, err
		}
		i |= uint32(b&0x7F) << shift
		if b < 0x80 {
			return int32(i), nil
		}
	}
	if b, err = in.ReadByte(); err != nil {
		return 0, err
	}
	i |= uint32(b&0x0F) << 28
	if b&0xF0 == 0 {
		return int32(i), nil
	}
	return 0, fmt.Errorf("%w: vInt with too many bits", ErrMalformedVarint)
}

func (in *BufferedInput) ReadVLong() (int64, error) {
	if in.bufLimit-in.bufPos < 9 {
		return in.readVLongSlow()
	}
	b := in.buf[in.bufPos]
	in.bufPos++
	if b < 0x80 {
		return int64(b), nil
	}
	i := uint64(b & 0x7F)
	for shift := 7; shift <= 56; shift += 7 {
		b = in.buf[in.bufPos]
		in.bufPos++
		i |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return int64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: vLong would be negative", ErrMalformedVarint)
}

func (in *BufferedInput) readVLongSlow() (int64, error) {
	b, err := in.ReadByte()
	if err != nil {
		return 0, err
	}
	if b < 0x80 {
		return int64(b), nil
	}
	i := uint64(b & 0x7F)
	for shift := 7; shift <= 56; shift += 7 {
		if b, err = in.ReadByte(); err != nil {
			return 0, err
		}
		i |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return int64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: vLong would be negative", ErrMalformedVarint)
}
