package lcg

import (
	"fmt"
	"sync/atomic"

	"github.com/tutils/untwist"
)

// prev steps the state back once and returns the top bits of the state it
// left, i.e. the bits the matching next call returned.
func (r *Random) prev(bits uint) int32 {
	var cur, prev int64
	for {
		cur = atomic.LoadInt64(&r.state)
		prev = ((cur - addend) * inverseMultiplier) & mask
		if atomic.CompareAndSwapInt64(&r.state, cur, prev) {
			break
		}
	}
	return int32(uint64(cur) >> (48 - bits))
}

// PrevInt undoes NextInt and returns the value it produced.
func (r *Random) PrevInt() int32 {
	return r.prev(32)
}

// PrevIntN undoes NextIntN(bound). Draws the forward call rejected fail the
// same test on the way back and are skipped by the following PrevIntN.
func (r *Random) PrevIntN(bound int32) (int32, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: bound must be strictly positive, got %d", untwist.ErrInvalidArgument, bound)
	}
	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.prev(31))) >> 31), nil
	}
	for {
		j := r.prev(31)
		k := j % bound
		if j-k+(bound-1) >= 0 {
			return k, nil
		}
	}
}

// PrevLong undoes NextLong.
func (r *Random) PrevLong() int64 {
	lo := int64(r.prev(32))
	hi := int64(r.prev(32))
	return hi<<32 + lo
}

// PrevDouble undoes NextDouble.
func (r *Random) PrevDouble() float64 {
	lo := int64(r.prev(27))
	hi := int64(r.prev(26))
	return float64(hi<<27+lo) * doubleUnit
}

// PrevFloat undoes NextFloat.
func (r *Random) PrevFloat() float32 {
	return float32(r.prev(24)) * floatUnit
}

// PrevBoolean undoes NextBoolean.
func (r *Random) PrevBoolean() bool {
	return r.prev(1) != 0
}

// PrevBytes undoes a NextBytes call that filled len(buf) bytes. buf receives
// the bytes of that call in reverse order.
func (r *Random) PrevBytes(buf []byte) {
	rem := len(buf) % 4
	if rem > 0 {
		rnd := r.PrevInt()
		for i := rem - 1; i >= 0; i-- {
			buf[i] = byte(rnd)
			rnd >>= 8
		}
	}
	for i := rem; i < len(buf); {
		rnd := uint32(r.PrevInt())
		for n := 4; n > 0; n-- {
			buf[i] = byte(rnd >> 24)
			rnd <<= 8
			i++
		}
	}
}
