package go_buffered_input

import "errors"

var (
	// ErrEndOfData is returned when a read would require bytes beyond the
	// store's length. Bytes already copied into a caller buffer before the
	// shortfall was detected stay copied; the call still fails.
	ErrEndOfData = errors.New("read past end of data")

	// ErrMalformedVarint is returned when a vInt carries payload outside
	// the low 4 bits of its 5th byte, or a vLong does not terminate within
	// 9 bytes.
	ErrMalformedVarint = errors.New("malformed varint")

	// ErrInvalidBufferSize is returned at construction time when the
	// configured window size is below MinBufferSize.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
)
