package go_buffered_input

import "fmt"

// memStore is an in-memory backing store over a byte slice. Forks share
// the slice; it must not be mutated while readers are bound to it.
type memStore struct {
	data []byte
	off  int64
}

// NewMemStore returns a store serving reads from data.
func NewMemStore(data []byte) IForkableStore {
	return &memStore{data: data}
}

func (m *memStore) Fetch(p []byte) error {
	end := m.off + int64(len(p))
	if m.off < 0 || end > int64(len(m.data)) {
		return fmt.Errorf("%w: fetch [%d, %d) of %d", ErrEndOfData, m.off, end, len(m.data))
	}
	copy(p, m.data[m.off:end])
	m.off = end
	return nil
}

func (m *memStore) Reposition(off int64) error {
	m.off = off
	return nil
}

func (m *memStore) Length() int64 {
	return int64(len(m.data))
}

func (m *memStore) Fork() IStore {
	return &memStore{data: m.data, off: m.off}
}

var _ IForkableStore = (*memStore)(nil)
