package sampler

import (
	"errors"
	"math"
	"testing"

	"github.com/tutils/untwist"
)

// script replays a fixed list of raw draws
type script struct {
	ints  []int32
	longs []int64
	calls int
}

func (s *script) NextInt() int32 {
	v := s.ints[s.calls]
	s.calls++
	return v
}

func (s *script) NextLong() int64 {
	v := s.longs[s.calls]
	s.calls++
	return v
}

func TestIntNInvalidBound(t *testing.T) {
	for _, bound := range []int32{0, -1, math.MinInt32} {
		if _, err := IntN(&script{ints: []int32{1}}, bound); !errors.Is(err, untwist.ErrInvalidArgument) {
			t.Fatalf("bound %d: expected invalid argument, got %v", bound, err)
		}
	}
}

func TestIntNPowerOfTwo(t *testing.T) {
	raws := []int32{-1244746321, 1060493871, -1826063944, 0, -1, math.MaxInt32, math.MinInt32}
	for k := uint(0); k <= 30; k++ {
		bound := int32(1) << k
		for _, raw := range raws {
			src := &script{ints: []int32{raw}}
			v, err := IntN(src, bound)
			if err != nil {
				t.Fatal(err)
			}
			want := int32(uint32(raw) >> (32 - k))
			if v != want {
				t.Fatalf("bound %d raw %d: got %d, want top bits %d", bound, raw, v, want)
			}
			if src.calls != 1 {
				t.Fatalf("power of two bound consumed %d draws", src.calls)
			}
		}
	}
}

func TestIntNRejectsBiasedDraw(t *testing.T) {
	// -1 drops to MaxInt32, which falls in the incomplete last bucket
	src := &script{ints: []int32{-1, 10}}
	v, err := IntN(src, 1<<30+1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 || src.calls != 2 {
		t.Fatalf("got %d after %d draws, want 5 after 2", v, src.calls)
	}
}

func TestIntNModulo(t *testing.T) {
	src := &script{ints: []int32{-1244746321}}
	v, _ := IntN(src, 255)
	// (3050220975 >> 1) % 255
	if v != 112 {
		t.Fatalf("got %d, want 112", v)
	}
}

func TestIntRange(t *testing.T) {
	src := &script{ints: []int32{-1244746321}}
	v, err := IntRange(src, 100, 116)
	if err != nil {
		t.Fatal(err)
	}
	if v != 111 {
		t.Fatalf("got %d, want 111", v)
	}

	// origin >= bound falls back to a raw draw
	src = &script{ints: []int32{-7}}
	if v, err := IntRange(src, 5, 5); err != nil || v != -7 {
		t.Fatalf("got %d, %v, want raw draw -7", v, err)
	}

	// span wider than int32 rejects out-of-range raw draws
	src = &script{ints: []int32{-20, math.MaxInt32, 5}}
	if v, _ := IntRange(src, -10, math.MaxInt32); v != 5 || src.calls != 3 {
		t.Fatalf("got %d after %d draws, want 5 after 3", v, src.calls)
	}
}

func TestLongN(t *testing.T) {
	for _, bound := range []int64{0, -1, math.MinInt64} {
		if _, err := LongN(&script{longs: []int64{1}}, bound); !errors.Is(err, untwist.ErrInvalidArgument) {
			t.Fatalf("bound %d: expected invalid argument, got %v", bound, err)
		}
	}

	src := &script{longs: []int64{-5346144739450824145}}
	if v, _ := LongN(src, 16); v != 15 {
		t.Fatalf("got %d, want 15", v)
	}

	src = &script{longs: []int64{-1, 20}}
	v, err := LongN(src, 1<<62+1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 10 || src.calls != 2 {
		t.Fatalf("got %d after %d draws, want 10 after 2", v, src.calls)
	}

	// negative raw draws never yield a negative result
	src = &script{longs: []int64{math.MinInt64 + 3}}
	if v, _ := LongN(src, 1000); v < 0 || v >= 1000 {
		t.Fatalf("out of range: %d", v)
	}
}

func TestLongRange(t *testing.T) {
	src := &script{longs: []int64{-5346144739450824145}}
	if v := LongRange(src, 0, 16); v != 15 {
		t.Fatalf("got %d, want 15", v)
	}

	src = &script{longs: []int64{-3}}
	if v := LongRange(src, 10, 10); v != -3 {
		t.Fatalf("got %d, want raw draw -3", v)
	}

	src = &script{longs: []int64{-20, 7}}
	if v := LongRange(src, -10, math.MaxInt64); v != 7 || src.calls != 2 {
		t.Fatalf("got %d after %d draws, want 7 after 2", v, src.calls)
	}

	src = &script{longs: []int64{-1, 21}}
	if v := LongRange(src, 100, 100+1<<62+1); v != 110 || src.calls != 2 {
		t.Fatalf("got %d after %d draws, want 110 after 2", v, src.calls)
	}
}
