// Package sampler holds the bounded and ranged sampling algorithms shared by
// every generator family. They reproduce the JVM rejection-sampling rules
// exactly, including which raw draws are consumed and in what order.
package sampler

import (
	"fmt"

	"github.com/tutils/untwist"
)

// IntSource supplies raw 32-bit draws
type IntSource interface {
	NextInt() int32
}

// LongSource supplies raw 64-bit draws
type LongSource interface {
	NextLong() int64
}

// IntN returns a uniform value in [0, bound).
func IntN(src IntSource, bound int32) (int32, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: bound must be strictly positive, got %d", untwist.ErrInvalidArgument, bound)
	}

	r := next31(src)
	m := bound - 1
	if bound&m == 0 {
		return int32((int64(bound) * int64(r)) >> 31), nil
	}

	// reject candidates from the last, incomplete multiple of bound
	for u := r; ; u = next31(src) {
		r = u % bound
		if u-r+m >= 0 {
			break
		}
	}
	return r, nil
}

// IntRange returns a uniform value in [origin, bound). When origin >= bound
// the range is ignored and a raw draw is returned.
func IntRange(src IntSource, origin, bound int32) (int32, error) {
	if origin >= bound {
		return src.NextInt(), nil
	}

	n := bound - origin
	if n > 0 {
		r, err := IntN(src, n)
		if err != nil {
			return 0, err
		}
		return r + origin, nil
	}

	// range not representable as int32
	r := src.NextInt()
	for r < origin || r >= bound {
		r = src.NextInt()
	}
	return r, nil
}

// LongN returns a uniform value in [0, bound).
func LongN(src LongSource, bound int64) (int64, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: bound must be strictly positive, got %d", untwist.ErrInvalidArgument, bound)
	}

	r := src.NextLong()
	m := bound - 1
	if bound&m == 0 {
		return r & m, nil
	}

	for u := int64(uint64(r) >> 1); ; u = int64(uint64(src.NextLong()) >> 1) {
		r = u % bound
		if u+m-r >= 0 {
			break
		}
	}
	return r, nil
}

// LongRange returns a uniform value in [origin, bound). When origin >= bound
// the range is ignored and a raw draw is returned.
func LongRange(src LongSource, origin, bound int64) int64 {
	r := src.NextLong()
	if origin >= bound {
		return r
	}

	n := bound - origin
	m := n - 1
	switch {
	case n&m == 0:
		r = (r & m) + origin
	case n > 0:
		for u := int64(uint64(r) >> 1); ; u = int64(uint64(src.NextLong()) >> 1) {
			r = u % n
			if u+m-r >= 0 {
				break
			}
		}
		r += origin
	default:
		// range not representable as int64
		for r < origin || r >= bound {
			r = src.NextLong()
		}
	}
	return r
}

func next31(src IntSource) int32 {
	return int32(uint32(src.NextInt()) >> 1)
}
