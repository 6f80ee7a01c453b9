package xor

import (
	"io"

	"github.com/tutils/untwist"
	"github.com/tutils/untwist/crypt"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	seed int64
}

// NewEncoder implements crypt.Crypt.
func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:   w,
		key: untwist.NewReader(opt.generatorNewer(c.seed)),
	}
}

// NewDecoder implements crypt.Crypt.
func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:   r,
		key: untwist.NewReader(opt.generatorNewer(c.seed)),
	}
}

// NewCrypt create a new Crypt. The keystream is the byte stream of a
// generator seeded with seed, lcg.New unless an option picks another.
func NewCrypt(seed int64) crypt.Crypt {
	return &xorCrypt{
		seed: seed,
	}
}

type xorEncoder struct {
	w   io.Writer
	key io.Reader
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	e.key.Read(e.buf)
	for i, b := range p {
		e.buf[i] ^= b
	}

	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r   io.Reader
	key io.Reader
	buf []byte
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n == 0 {
		return n, err
	}
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	} else {
		d.buf = d.buf[:n]
	}

	d.key.Read(d.buf)
	for i, b := range d.buf {
		p[i] ^= b
	}

	return n, err
}
