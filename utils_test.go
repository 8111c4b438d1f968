package go_buffered_input

import (
	"crypto/rand"
)

// countingStore wraps a store and counts Fetch calls, to verify how often
// a reader actually goes back to the backing store.
type countingStore struct {
	IStore
	fetches int
}

func (c *countingStore) Fetch(p []byte) error {
	c.fetches++
	return c.IStore.Fetch(p)
}

func generateBytes(n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return nil
	}
	return b
}

func appendVInt(b []byte, v int32) []byte {
	u := uint32(v)
	for u >= 0x80 {
		b = append(b, byte(u)|0x80)
		u >>= 7
	}
	return append(b, byte(u))
}

func appendVLong(b []byte, v int64) []byte {
	u := uint64(v)
	for u >= 0x80 {
		b = append(b, byte(u)|0x80)
		u >>= 7
	}
	return append(b, byte(u))
}
