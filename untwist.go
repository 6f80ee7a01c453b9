package untwist

import (
	"errors"
	"fmt"
)

// Errors reported by generators and samplers
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
)

// Generator is the capability set shared by every generator family.
// Outputs are bit-exact with the reference algorithm a family mimics.
type Generator interface {
	// NextInt returns the next 32 bits as a signed int.
	NextInt() int32
	// NextIntN returns a value in [0, bound).
	NextIntN(bound int32) (int32, error)
	// NextIntRange returns a value in [origin, bound).
	NextIntRange(origin, bound int32) (int32, error)
	// NextLong returns the next signed 64-bit value.
	NextLong() int64
	// NextLongN returns a value in [0, bound).
	NextLongN(bound int64) (int64, error)
	// NextDouble returns a value in [0, 1).
	NextDouble() float64
	// NextFloat returns a value in [0, 1).
	NextFloat() float32
	NextBoolean() bool
	// NextBytes fills buf[start:start+length].
	NextBytes(buf []byte, start, length int) error
}

// CheckBounds validates a NextBytes sub-range of buf.
func CheckBounds(buf []byte, start, length int) error {
	if start < 0 || start >= len(buf) {
		return fmt.Errorf("%w: start %d, less than 0 or past the end of a %d byte buffer", ErrOutOfRange, start, len(buf))
	}
	if length < 0 || length > len(buf)-start {
		return fmt.Errorf("%w: length %d, starting from %d in a %d byte buffer", ErrOutOfRange, length, start, len(buf))
	}
	return nil
}

// Fill fills the whole buffer from g. An empty buffer is left untouched.
func Fill(g Generator, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return g.NextBytes(buf, 0, len(buf))
}
