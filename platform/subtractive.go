package platform

import (
	"fmt"
	"math"

	"github.com/tutils/untwist"
)

var _ Host = (*Subtractive)(nil)

const (
	mbig  = math.MaxInt32
	mseed = 161803398
)

// Subtractive is Knuth's subtractive generator as shipped by the .NET
// Framework System.Random, seeded the same way. Not safe for concurrent use.
type Subtractive struct {
	state  [56]int32
	inext  int
	inextp int
}

// NewSubtractive returns a host seeded with seed.
func NewSubtractive(seed int32) *Subtractive {
	s := &Subtractive{}
	s.init(seed)
	return s
}

func (s *Subtractive) init(seed int32) {
	subtraction := int32(mbig)
	if seed != math.MinInt32 {
		subtraction = seed
		if subtraction < 0 {
			subtraction = -subtraction
		}
	}

	mj := mseed - subtraction
	s.state[55] = mj
	mk := int32(1)
	for i := 1; i < 55; i++ {
		ii := (21 * i) % 55
		s.state[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += mbig
		}
		mj = s.state[ii]
	}
	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			s.state[i] -= s.state[1+(i+30)%55]
			if s.state[i] < 0 {
				s.state[i] += mbig
			}
		}
	}
	s.inext = 0
	s.inextp = 21
}

func (s *Subtractive) sample() int32 {
	inext, inextp := s.inext+1, s.inextp+1
	if inext >= 56 {
		inext = 1
	}
	if inextp >= 56 {
		inextp = 1
	}

	v := s.state[inext] - s.state[inextp]
	if v == mbig {
		v--
	}
	if v < 0 {
		v += mbig
	}

	s.state[inext] = v
	s.inext, s.inextp = inext, inextp
	return v
}

// prevSample undoes sample and returns the value it produced. Every slot
// holds a value in [0, MBIG) after seeding, which makes the step exact.
func (s *Subtractive) prevSample() int32 {
	inext, inextp := s.inext, s.inextp
	if inext < 1 {
		// not advanced since seeding; 0 and 55 both step to slot 1
		inext = 55
	}
	if inextp < 1 {
		inextp = 55
	}

	v := s.state[inext]
	prev := int64(v) + int64(s.state[inextp])
	if prev >= mbig {
		prev -= mbig
	}
	s.state[inext] = int32(prev)

	inext--
	if inext < 1 {
		inext = 55
	}
	inextp--
	if inextp < 1 {
		inextp = 55
	}
	s.inext, s.inextp = inext, inextp
	return v
}

// largeRangeSample spreads two samples over [0, 1) for ranges wider than
// MaxInt32, where a single sample would only reach every other value.
func (s *Subtractive) largeRangeSample() float64 {
	r := s.sample()
	if s.sample()%2 == 0 {
		r = -r
	}
	d := float64(r)
	d += mbig - 1
	d /= 2*mbig - 1
	return d
}

func (s *Subtractive) prevLargeRangeSample() float64 {
	negative := s.prevSample()%2 == 0
	r := s.prevSample()
	if negative {
		r = -r
	}
	d := float64(r)
	d += mbig - 1
	d /= 2*mbig - 1
	return d
}

// Next implements Host.
func (s *Subtractive) Next() int32 {
	return s.sample()
}

// NextN implements Host. NextN(0) is 0.
func (s *Subtractive) NextN(maxValue int32) (int32, error) {
	if maxValue < 0 {
		return 0, fmt.Errorf("%w: maxValue must be non-negative, got %d", untwist.ErrInvalidArgument, maxValue)
	}
	return int32(s.NextDouble() * float64(maxValue)), nil
}

// NextRange implements Host. NextRange(v, v) is v.
func (s *Subtractive) NextRange(minValue, maxValue int32) (int32, error) {
	if minValue > maxValue {
		return 0, fmt.Errorf("%w: minValue %d greater than maxValue %d", untwist.ErrInvalidArgument, minValue, maxValue)
	}

	span := int64(maxValue) - int64(minValue)
	if span <= math.MaxInt32 {
		return int32(s.NextDouble()*float64(span)) + minValue, nil
	}
	return int32(int64(s.largeRangeSample()*float64(span)) + int64(minValue)), nil
}

// NextDouble implements Host.
func (s *Subtractive) NextDouble() float64 {
	return float64(s.sample()) * (1.0 / mbig)
}

// Prev implements Host.
func (s *Subtractive) Prev() int32 {
	return s.prevSample()
}

// PrevN implements Host.
func (s *Subtractive) PrevN(maxValue int32) (int32, error) {
	if maxValue < 0 {
		return 0, fmt.Errorf("%w: maxValue must be non-negative, got %d", untwist.ErrInvalidArgument, maxValue)
	}
	return int32(s.PrevDouble() * float64(maxValue)), nil
}

// PrevRange implements Host.
func (s *Subtractive) PrevRange(minValue, maxValue int32) (int32, error) {
	if minValue > maxValue {
		return 0, fmt.Errorf("%w: minValue %d greater than maxValue %d", untwist.ErrInvalidArgument, minValue, maxValue)
	}

	span := int64(maxValue) - int64(minValue)
	if span <= math.MaxInt32 {
		return int32(s.PrevDouble()*float64(span)) + minValue, nil
	}
	return int32(int64(s.prevLargeRangeSample()*float64(span)) + int64(minValue)), nil
}

// PrevDouble implements Host.
func (s *Subtractive) PrevDouble() float64 {
	return float64(s.prevSample()) * (1.0 / mbig)
}
