package go_buffered_input

const (
	// DefaultBufferSize is the window size for ordinary read access.
	DefaultBufferSize = 1024

	// MergeBufferSize is the window size for bulk scans. Larger windows pay
	// off when a reader sweeps a big range front to back, but many readers
	// can be alive at once during a merge, so it is kept moderate.
	MergeBufferSize = 4096

	// MinBufferSize Minimum window size allowed
	MinBufferSize = 8
)

// AccessPattern hints how a reader is going to be used, so a sensible
// window size can be picked without the caller hardcoding one.
type AccessPattern byte

const (
	AccessPatternDefault AccessPattern = iota
	AccessPatternMerge
)

// BufferedInput windows a fixed-size in-memory buffer over an IStore.
// It keeps one contiguous run of store bytes [bufStart, bufStart+bufLimit)
// in buf and slides that window on demand. The current logical position is
// always bufStart+bufPos.
type BufferedInput struct {
	store IStore

	bufferSize int

	// buf is allocated lazily on the first refill, so a reader (or clone)
	// that is created but never read costs no memory.
	buf []byte

	// bufStart is the offset in the store of buf[0].
	bufStart int64
	bufPos   int
	bufLimit int
}
