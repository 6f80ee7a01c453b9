package lcg

import (
	"slices"
	"testing"
)

func TestPrevInt(t *testing.T) {
	r := New(testSeed)
	forward := make([]int32, 10)
	for i := range forward {
		forward[i] = r.NextInt()
	}
	for i := len(forward) - 1; i >= 0; i-- {
		if got := r.PrevInt(); got != forward[i] {
			t.Fatalf("#%d: got %d, want %d", i, got, forward[i])
		}
	}
	if r.Seed() != testSeed {
		t.Fatalf("seed %d after full reversal, want %d", r.Seed(), testSeed)
	}
}

func TestPrevMixed(t *testing.T) {
	r := New(-0x3f97396e)
	l := r.NextLong()
	d := r.NextDouble()
	f := r.NextFloat()
	b := r.NextBoolean()
	n, _ := r.NextIntN(255)
	p, _ := r.NextIntN(64)

	if got, _ := r.PrevIntN(64); got != p {
		t.Fatalf("PrevIntN(64): got %d, want %d", got, p)
	}
	if got, _ := r.PrevIntN(255); got != n {
		t.Fatalf("PrevIntN(255): got %d, want %d", got, n)
	}
	if got := r.PrevBoolean(); got != b {
		t.Fatalf("PrevBoolean: got %v, want %v", got, b)
	}
	if got := r.PrevFloat(); got != f {
		t.Fatalf("PrevFloat: got %v, want %v", got, f)
	}
	if got := r.PrevDouble(); got != d {
		t.Fatalf("PrevDouble: got %v, want %v", got, d)
	}
	if got := r.PrevLong(); got != l {
		t.Fatalf("PrevLong: got %d, want %d", got, l)
	}
	if r.Seed() != -0x3f97396e&mask {
		t.Fatal("state not restored")
	}
}

func TestPrevIntNSequence(t *testing.T) {
	r := New(testSeed)
	forward := make([]int32, 2000)
	for i := range forward {
		forward[i], _ = r.NextIntN(1<<30 + 1)
	}
	for i := len(forward) - 1; i >= 0; i-- {
		got, err := r.PrevIntN(1<<30 + 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != forward[i] {
			t.Fatalf("#%d: got %d, want %d", i, got, forward[i])
		}
	}
}

func TestPrevBytes(t *testing.T) {
	cases := []struct {
		next, prev []byte
	}{
		{[]byte{175, 173, 206, 181, 47, 218, 53, 63}, []byte{63, 53, 218, 47, 181, 206, 173, 175}},
		{[]byte{175, 173, 206, 181, 47, 218, 53}, []byte{53, 218, 47, 181, 206, 173, 175}},
	}
	for _, c := range cases {
		r := New(testSeed)
		forward := make([]byte, len(c.next))
		if err := r.NextBytes(forward, 0, len(forward)); err != nil {
			t.Fatal(err)
		}
		back := make([]byte, len(c.prev))
		r.PrevBytes(back)
		if !slices.Equal(forward, c.next) {
			t.Fatalf("NextBytes: got %v, want %v", forward, c.next)
		}
		if !slices.Equal(back, c.prev) {
			t.Fatalf("PrevBytes: got %v, want %v", back, c.prev)
		}
	}
}

func TestNextPrevBytes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 256, 257, 258, 259, 2459} {
		r := New(testSeed)
		r.NextInt()
		forward := make([]byte, n)
		if err := r.NextBytes(forward, 0, n); err != nil {
			t.Fatal(err)
		}
		back := make([]byte, n)
		r.PrevBytes(back)
		slices.Reverse(back)
		if !slices.Equal(back, forward) {
			t.Fatalf("len %d: reversed PrevBytes differs from NextBytes", n)
		}
		if got, want := r.PrevInt(), New(testSeed).NextInt(); got != want {
			t.Fatalf("len %d: state not restored, got %d want %d", n, got, want)
		}
	}
}

func TestPrevNextBytes(t *testing.T) {
	for _, n := range []int{256, 257, 258, 259, 2459} {
		r := New(testSeed)
		back := make([]byte, n)
		r.PrevBytes(back)
		forward := make([]byte, n)
		if err := r.NextBytes(forward, 0, n); err != nil {
			t.Fatal(err)
		}
		slices.Reverse(back)
		if !slices.Equal(back, forward) {
			t.Fatalf("len %d: NextBytes does not replay the bytes PrevBytes stepped over", n)
		}
		if r.Seed() != testSeed {
			t.Fatalf("len %d: state not restored", n)
		}
	}
}

func TestSeedContinuesSequence(t *testing.T) {
	r := New(testSeed)
	for i := 0; i < 17; i++ {
		r.NextInt()
	}
	clone := New(r.Seed())
	for i := 0; i < 100; i++ {
		if a, b := r.NextLong(), clone.NextLong(); a != b {
			t.Fatalf("#%d: %d != %d", i, a, b)
		}
	}
}
