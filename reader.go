package untwist

import (
	"io"
)

var _ io.Reader = (*Reader)(nil)

// Reader is an endless byte stream over a Generator, produced by NextBytes
// calls of four bytes each. Bytes of a call not consumed by one Read are
// served by the next, so the stream does not depend on how it is chunked and
// a single Read returns the same bytes as one NextBytes call of that length.
type Reader struct {
	g    Generator
	buf  [4]byte
	next int
}

// NewReader create a new Reader
func NewReader(g Generator) *Reader {
	return &Reader{g: g, next: 4}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if r.next == len(r.buf) {
			if err := r.g.NextBytes(r.buf[:], 0, len(r.buf)); err != nil {
				return n, err
			}
			r.next = 0
		}
		c := copy(p[n:], r.buf[r.next:])
		r.next += c
		n += c
	}
	return n, nil
}
