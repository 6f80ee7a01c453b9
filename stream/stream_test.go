package stream

import (
	"errors"
	"slices"
	"testing"

	"github.com/tutils/untwist"
	"github.com/tutils/untwist/lcg"
	"github.com/tutils/untwist/platform"
)

func TestIntsN(t *testing.T) {
	expected := []int32{-1244746321, 1060493871, -1826063944, 1976922248, -230127712,
		68408698, 169247282, -735843605, 2089114528, 1533708900}
	actual := IntsN(lcg.New(1000), int64(len(expected))).Collect()
	if !slices.Equal(actual, expected) {
		t.Fatalf("got %v, want %v", actual, expected)
	}
}

func TestIntsRangeN(t *testing.T) {
	actual := IntsRangeN(lcg.New(1000), 10, 0, 16).Collect()
	if expected := []int32{11, 3, 9, 7, 15, 0, 0, 13, 7, 5}; !slices.Equal(actual, expected) {
		t.Fatalf("lcg: got %v, want %v", actual, expected)
	}

	actual = IntsRangeN(platform.New(-0x3f97396e), 10, 0, 16).Collect()
	if expected := []int32{5, 10, 0, 10, 14, 0, 5, 1, 2, 4}; !slices.Equal(actual, expected) {
		t.Fatalf("platform: got %v, want %v", actual, expected)
	}
}

func TestLongsRangeN(t *testing.T) {
	actual := LongsRangeN(lcg.New(1000), 10, 0, 16).Collect()
	if expected := []int64{15, 8, 10, 11, 4, 14, 15, 6, 4, 2}; !slices.Equal(actual, expected) {
		t.Fatalf("got %v, want %v", actual, expected)
	}

	for v := range LongsRangeN(platform.New(1), 1000, -50, 50).All() {
		if v < -50 || v >= 50 {
			t.Fatal("out of limits: ", v)
		}
	}
}

func TestKinds(t *testing.T) {
	doubles := DoublesN(platform.New(-0x3f97396e), 2).Collect()
	if !slices.Equal(doubles, []float64{0.31840173914954145, 0.6397003506495154}) {
		t.Fatalf("doubles: %v", doubles)
	}
	floats := FloatsN(lcg.New(1000), 3).Collect()
	if !slices.Equal(floats, []float32{0.7101849, 0.24691546, 0.5748363}) {
		t.Fatalf("floats: %v", floats)
	}
	bools := BooleansN(lcg.New(1000), 5).Collect()
	if !slices.Equal(bools, []bool{true, false, true, false, true}) {
		t.Fatalf("booleans: %v", bools)
	}
	longs := LongsN(platform.New(-0x3f97396e), 2).Collect()
	if !slices.Equal(longs, []int64{7160971568492367569, -8931728783750763133}) {
		t.Fatalf("longs: %v", longs)
	}
}

func TestNotRestartable(t *testing.T) {
	s := IntsN(lcg.New(1000), 3)
	first := s.Collect()
	if len(first) != 3 {
		t.Fatalf("got %d values, want 3", len(first))
	}
	for range s.All() {
		t.Fatal("exhausted stream yielded again")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("exhausted stream yielded again")
	}
}

func TestPartialRange(t *testing.T) {
	s := IntsN(lcg.New(1000), 10)
	var head []int32
	for v := range s.All() {
		head = append(head, v)
		if len(head) == 4 {
			break
		}
	}
	tail := s.Collect()
	if len(tail) != 6 {
		t.Fatalf("got %d remaining values, want 6", len(tail))
	}
	if all := IntsN(lcg.New(1000), 10).Collect(); !slices.Equal(append(head, tail...), all) {
		t.Fatal("resumed range skipped or repeated values")
	}
}

func TestEmpty(t *testing.T) {
	for _, count := range []int64{0, -1, -1 << 40} {
		g := lcg.New(1000)
		if vs := IntsN(g, count).Collect(); len(vs) != 0 {
			t.Fatalf("count %d: got %v", count, vs)
		}
		if g.Seed() != 1000 {
			t.Fatalf("count %d: empty stream drew values", count)
		}
	}
}

func TestLargeCount(t *testing.T) {
	s := LongsN(lcg.New(1000), 1<<40)
	if vs := s.Take(5); len(vs) != 5 {
		t.Fatalf("got %d values, want 5", len(vs))
	}
	if s.Remaining() != 1<<40-5 {
		t.Fatalf("remaining %d", s.Remaining())
	}
}

func TestUnbounded(t *testing.T) {
	s := Doubles(lcg.New(1000))
	if s.Remaining() != -1 {
		t.Fatal("unbounded stream reports a length")
	}
	n := 0
	for v := range s.All() {
		if v < 0 || v >= 1 {
			t.Fatal("out of limits: ", v)
		}
		if n++; n == 10000 {
			break
		}
	}
	if vs := IntsRange(lcg.New(1), -3, 3).Take(100); len(vs) != 100 {
		t.Fatalf("got %d values", len(vs))
	}
}

func TestSharedGenerator(t *testing.T) {
	g := lcg.New(1000)
	a, b := Ints(g), Ints(g)
	x, _ := a.Next()
	y, _ := b.Next()
	if x != -1244746321 || y != 1060493871 {
		t.Fatalf("streams over one generator must interleave draws, got %d %d", x, y)
	}
}

func TestErrStopsStream(t *testing.T) {
	s := IntsRangeN(platform.New(1), 10, 5, 4)
	if vs := s.Collect(); len(vs) != 0 {
		t.Fatalf("got %v", vs)
	}
	if !errors.Is(s.Err(), untwist.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", s.Err())
	}

	// the LCG family treats the same range as unbounded
	if vs := IntsRangeN(lcg.New(1), 10, 5, 4).Collect(); len(vs) != 10 {
		t.Fatalf("got %d values, want 10", len(vs))
	}
}
