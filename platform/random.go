// Package platform implements a generator that takes its primitive 32-bit
// draws from a host generator and derives longs, floats, booleans and bytes
// from them the way the .NET runtime based reference does.
package platform

import (
	"time"

	"github.com/tutils/untwist"
	"github.com/tutils/untwist/sampler"
)

var _ untwist.Generator = (*Random)(nil)

// Host is a 32-bit generator producing non-negative values only. Every Next
// method has a Prev counterpart that steps the state back over one call and
// returns what that call produced.
type Host interface {
	// Next returns a value in [0, MaxInt32).
	Next() int32
	// NextN returns a value in [0, maxValue); zero yields zero.
	NextN(maxValue int32) (int32, error)
	// NextRange returns a value in [minValue, maxValue).
	NextRange(minValue, maxValue int32) (int32, error)
	// NextDouble returns a value in [0, 1).
	NextDouble() float64

	Prev() int32
	PrevN(maxValue int32) (int32, error)
	PrevRange(minValue, maxValue int32) (int32, error)
	PrevDouble() float64
}

// Random derives the full capability set from a Host. It adds no locking of
// its own; wrap it with untwist.NewSyncGenerator to share it.
type Random struct {
	host Host
}

// New returns a generator over a Subtractive host. The seed is truncated to
// 32 bits.
func New(seed int64) *Random {
	return NewWithHost(NewSubtractive(int32(seed)))
}

// NewUnseeded returns a generator seeded from the clock.
func NewUnseeded() *Random {
	return New(time.Now().UnixNano())
}

// NewWithHost returns a generator drawing from h.
func NewWithHost(h Host) *Random {
	return &Random{host: h}
}

// NextInt implements untwist.Generator. The result is never negative.
func (r *Random) NextInt() int32 {
	return r.host.Next()
}

// NextIntN implements untwist.Generator. NextIntN(0) returns 0.
func (r *Random) NextIntN(bound int32) (int32, error) {
	return r.host.NextN(bound)
}

// NextIntRange implements untwist.Generator. origin > bound is an error.
func (r *Random) NextIntRange(origin, bound int32) (int32, error) {
	return r.host.NextRange(origin, bound)
}

// NextLong implements untwist.Generator, packing 16, 24 and 24 bits of three
// consecutive draws.
func (r *Random) NextLong() int64 {
	b1 := int64(r.NextInt()) & 0xFFFF
	b2 := int64(r.NextInt()) & 0xFFFFFF
	b3 := int64(r.NextInt()) & 0xFFFFFF
	return b1<<48 | b2<<24 | b3
}

// NextLongN implements untwist.Generator.
func (r *Random) NextLongN(bound int64) (int64, error) {
	return sampler.LongN(r, bound)
}

// NextDouble implements untwist.Generator.
func (r *Random) NextDouble() float64 {
	return r.host.NextDouble()
}

// NextFloat implements untwist.Generator.
func (r *Random) NextFloat() float32 {
	return float32(r.NextDouble())
}

// NextBoolean implements untwist.Generator.
func (r *Random) NextBoolean() bool {
	v, err := r.host.NextN(2)
	if err != nil {
		// hosts only fail on negative bounds
		panic(err)
	}
	return v != 0
}

// NextBytes implements untwist.Generator.
func (r *Random) NextBytes(buf []byte, start, length int) error {
	if err := untwist.CheckBounds(buf, start, length); err != nil {
		return err
	}
	for i := start; i < start+length; i++ {
		buf[i] = byte(r.NextInt() % (1 << 8))
	}
	return nil
}
