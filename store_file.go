package go_buffered_input

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// fileStore is a backing store over an *os.File. Fetches are positioned
// reads, so forks can share the one descriptor, including concurrently.
// The file is borrowed; closing it remains the caller's job. Its size is
// captured once at construction and must not change while readers are
// bound to the store.
type fileStore struct {
	f    *os.File
	size int64
	off  int64
}

// NewFileStore returns a store serving reads from f.
func NewFileStore(f *os.File) (IForkableStore, error) {
	stat, err := f.Stat()
	if err != nil {
		zap.L().Error("Failed to stat file", zap.String("name", f.Name()), zap.Error(err))
		return nil, err
	}
	return &fileStore{f: f, size: stat.Size()}, nil
}

func (fs *fileStore) Fetch(p []byte) error {
	end := fs.off + int64(len(p))
	if fs.off < 0 || end > fs.size {
		return fmt.Errorf("%w: fetch [%d, %d) of %d", ErrEndOfData, fs.off, end, fs.size)
	}
	// ReadAt only returns a nil error on a full read
	n, err := fs.f.ReadAt(p, fs.off)
	if err != nil {
		zap.L().Error("Failed to fetch from file",
			zap.String("name", fs.f.Name()),
			zap.Int64("offset", fs.off),
			zap.Int("length", len(p)),
			zap.Error(err))
		return err
	}
	fs.off += int64(n)
	return nil
}

func (fs *fileStore) Reposition(off int64) error {
	fs.off = off
	return nil
}

func (fs *fileStore) Length() int64 {
	return fs.size
}

func (fs *fileStore) Fork() IStore {
	return &fileStore{f: fs.f, size: fs.size, off: fs.off}
}

var _ IForkableStore = (*fileStore)(nil)
