// Package lcg implements the 48-bit linear congruential generator of the JVM
// (java.util.Random), bit for bit. A Random is safe for concurrent use: the
// state advances through a lock-free compare-and-swap loop.
package lcg

import (
	"sync/atomic"
	"time"

	"github.com/tutils/untwist"
	"github.com/tutils/untwist/sampler"
)

var _ untwist.Generator = (*Random)(nil)

const (
	multiplier        = 0x5DEECE66D
	inverseMultiplier = 0xDFE05BCB1365
	addend            = 0xB
	mask              = (1 << 48) - 1

	doubleUnit = 1.0 / (1 << 53)
	floatUnit  = 1.0 / (1 << 24)
)

// Random holds the 48-bit generator state
type Random struct {
	state int64
}

// New returns a generator seeded with seed.
func New(seed int64) *Random {
	return &Random{state: scramble(seed)}
}

// NewUnseeded returns a generator seeded from the clock, distinct for
// generators created within the same clock tick.
func NewUnseeded() *Random {
	return New(nextSeedUniquifier() ^ time.Now().UnixNano())
}

var seedUniquifier int64 = 8682522807148012

func nextSeedUniquifier() int64 {
	// L'Ecuyer, "Tables of Linear Congruential Generators of
	// Different Sizes and Good Lattice Structure", 1999
	for {
		current := atomic.LoadInt64(&seedUniquifier)
		next := current * 1181783497276652981
		if atomic.CompareAndSwapInt64(&seedUniquifier, current, next) {
			return next
		}
	}
}

func scramble(seed int64) int64 {
	return (seed ^ multiplier) & mask
}

// SetSeed resets the generator as if it had been created by New(seed).
func (r *Random) SetSeed(seed int64) {
	atomic.StoreInt64(&r.state, scramble(seed))
}

// Seed returns the seed that recreates the current state: New(r.Seed())
// continues the exact sequence of r.
func (r *Random) Seed() int64 {
	return scramble(atomic.LoadInt64(&r.state))
}

// next advances the state once and returns its top bits.
func (r *Random) next(bits uint) int32 {
	var old, next int64
	for {
		old = atomic.LoadInt64(&r.state)
		next = (old*multiplier + addend) & mask
		if atomic.CompareAndSwapInt64(&r.state, old, next) {
			break
		}
	}
	return int32(uint64(next) >> (48 - bits))
}

// NextInt implements untwist.Generator.
func (r *Random) NextInt() int32 {
	return r.next(32)
}

// NextIntN implements untwist.Generator. A zero bound is an error.
func (r *Random) NextIntN(bound int32) (int32, error) {
	return sampler.IntN(r, bound)
}

// NextIntRange implements untwist.Generator. When origin >= bound it returns
// NextInt.
func (r *Random) NextIntRange(origin, bound int32) (int32, error) {
	return sampler.IntRange(r, origin, bound)
}

// NextLong implements untwist.Generator.
func (r *Random) NextLong() int64 {
	hi := int64(r.next(32))
	lo := int64(r.next(32))
	return hi<<32 + lo
}

// NextLongN implements untwist.Generator.
func (r *Random) NextLongN(bound int64) (int64, error) {
	return sampler.LongN(r, bound)
}

// NextDouble implements untwist.Generator.
func (r *Random) NextDouble() float64 {
	hi := int64(r.next(26))
	lo := int64(r.next(27))
	return float64(hi<<27+lo) * doubleUnit
}

// NextFloat implements untwist.Generator.
func (r *Random) NextFloat() float32 {
	return float32(r.next(24)) * floatUnit
}

// NextBoolean implements untwist.Generator.
func (r *Random) NextBoolean() bool {
	return r.next(1) != 0
}

// NextBytes implements untwist.Generator.
func (r *Random) NextBytes(buf []byte, start, length int) error {
	if err := untwist.CheckBounds(buf, start, length); err != nil {
		return err
	}
	for i, end := start, start+length; i < end; {
		rnd := r.NextInt()
		for n := min(end-i, 4); n > 0; n-- {
			buf[i] = byte(rnd)
			rnd >>= 8
			i++
		}
	}
	return nil
}
