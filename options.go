package go_buffered_input

type OptionFn func(*BufferedInput)

// WithBufferSize sets an explicit window size in bytes. It must be at
// least MinBufferSize.
func WithBufferSize(size int) OptionFn {
	return func(in *BufferedInput) {
		in.bufferSize = size
	}
}

// WithAccessPattern picks the window size preset for the given pattern.
func WithAccessPattern(pattern AccessPattern) OptionFn {
	return func(in *BufferedInput) {
		in.bufferSize = bufferSizeFor(pattern)
	}
}

func bufferSizeFor(pattern AccessPattern) int {
	switch pattern {
	case AccessPatternMerge:
		return MergeBufferSize
	default:
		return DefaultBufferSize
	}
}
