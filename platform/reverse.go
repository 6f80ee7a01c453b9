package platform

import (
	"github.com/tutils/untwist"
	"github.com/tutils/untwist/sampler"
)

// PrevInt undoes NextInt and returns the value it produced.
func (r *Random) PrevInt() int32 {
	return r.host.Prev()
}

// PrevIntN undoes NextIntN(bound).
func (r *Random) PrevIntN(bound int32) (int32, error) {
	return r.host.PrevN(bound)
}

// PrevIntRange undoes NextIntRange(origin, bound).
func (r *Random) PrevIntRange(origin, bound int32) (int32, error) {
	return r.host.PrevRange(origin, bound)
}

// PrevLong undoes NextLong, taking the three draws back last first.
func (r *Random) PrevLong() int64 {
	b3 := int64(r.PrevInt()) & 0xFFFFFF
	b2 := int64(r.PrevInt()) & 0xFFFFFF
	b1 := int64(r.PrevInt()) & 0xFFFF
	return b1<<48 | b2<<24 | b3
}

// backwardLongs feeds the long sampler from PrevLong
type backwardLongs struct {
	r *Random
}

func (b backwardLongs) NextLong() int64 {
	return b.r.PrevLong()
}

// PrevLongN undoes NextLongN(bound). Like the forward call it skips rejected
// draws, so it is exact as long as the forward call accepted its first draw.
func (r *Random) PrevLongN(bound int64) (int64, error) {
	return sampler.LongN(backwardLongs{r}, bound)
}

// PrevDouble undoes NextDouble.
func (r *Random) PrevDouble() float64 {
	return r.host.PrevDouble()
}

// PrevFloat undoes NextFloat.
func (r *Random) PrevFloat() float32 {
	return float32(r.PrevDouble())
}

// PrevBoolean undoes NextBoolean.
func (r *Random) PrevBoolean() bool {
	v, err := r.host.PrevN(2)
	if err != nil {
		panic(err)
	}
	return v != 0
}

// PrevBytes undoes a NextBytes call of the same length. buf[start:start+length]
// receives the bytes of that call in reverse order.
func (r *Random) PrevBytes(buf []byte, start, length int) error {
	if err := untwist.CheckBounds(buf, start, length); err != nil {
		return err
	}
	for i := start; i < start+length; i++ {
		buf[i] = byte(r.PrevInt() % (1 << 8))
	}
	return nil
}
