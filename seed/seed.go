// Package seed supplies seed material from a cryptographically strong byte
// source. It is independent of the deterministic generators.
package seed

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Source reads seed material from an io.Reader
type Source struct {
	r io.Reader
}

// NewSource create a new Source
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

// Default reads from crypto/rand
var Default = NewSource(rand.Reader)

// Bytes returns n random bytes.
func (s *Source) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("seed: negative size %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, fmt.Errorf("seed: failed to read %d bytes: %w", n, err)
	}
	return b, nil
}

// Int returns a random int32, decoded little endian.
func (s *Source) Int() (int32, error) {
	b, err := s.Bytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// Long returns a random int64, decoded little endian.
func (s *Source) Long() (int64, error) {
	b, err := s.Bytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// IntArray returns n random int32 values.
func (s *Source) IntArray(n int) ([]int32, error) {
	if n < 0 {
		return nil, fmt.Errorf("seed: negative size %d", n)
	}
	b, err := s.Bytes(n * 4)
	if err != nil {
		return nil, err
	}
	vs := make([]int32, n)
	for i := range vs {
		vs[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vs, nil
}

// Bytes returns n random bytes from Default.
func Bytes(n int) ([]byte, error) {
	return Default.Bytes(n)
}

// Int returns a random int32 from Default.
func Int() (int32, error) {
	return Default.Int()
}

// Long returns a random int64 from Default.
func Long() (int64, error) {
	return Default.Long()
}

// IntArray returns n random int32 values from Default.
func IntArray(n int) ([]int32, error) {
	return Default.IntArray(n)
}
