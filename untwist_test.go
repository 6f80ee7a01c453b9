package untwist_test

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/tutils/untwist"
	"github.com/tutils/untwist/lcg"
	"github.com/tutils/untwist/platform"
)

func TestCheckBounds(t *testing.T) {
	buf := make([]byte, 4)
	if err := untwist.CheckBounds(buf, 0, 4); err != nil {
		t.Fatal(err)
	}
	if err := untwist.CheckBounds(buf, 3, 1); err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]int{{-1, 0}, {4, 0}, {0, 5}, {1, 4}, {0, -1}} {
		if err := untwist.CheckBounds(buf, c[0], c[1]); !errors.Is(err, untwist.ErrOutOfRange) {
			t.Fatalf("%v: expected out of range, got %v", c, err)
		}
	}
	if err := untwist.CheckBounds(nil, 0, 0); !errors.Is(err, untwist.ErrOutOfRange) {
		t.Fatalf("empty buffer: expected out of range, got %v", err)
	}
}

func TestFillEmpty(t *testing.T) {
	g := lcg.New(1000)
	if err := untwist.Fill(g, nil); err != nil {
		t.Fatal(err)
	}
	if g.Seed() != 1000 {
		t.Fatal("empty fill advanced the generator")
	}
}

func TestReaderMatchesNextBytes(t *testing.T) {
	families := map[string]func() untwist.Generator{
		"lcg":      func() untwist.Generator { return lcg.New(1000) },
		"platform": func() untwist.Generator { return platform.New(1000) },
	}
	for name, newGenerator := range families {
		for _, n := range []int{1, 3, 4, 8, 10, 33} {
			want := make([]byte, n)
			if err := newGenerator().NextBytes(want, 0, n); err != nil {
				t.Fatal(err)
			}
			got := make([]byte, n)
			if _, err := io.ReadFull(untwist.NewReader(newGenerator()), got); err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, want) {
				t.Fatalf("%s len %d: got %v, want %v", name, n, got, want)
			}
		}
	}
}

func TestReaderPlatformBytes(t *testing.T) {
	got := make([]byte, 8)
	untwist.NewReader(platform.New(1000)).Read(got)
	if want := []byte{29, 234, 25, 125, 216, 199, 188, 198}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReaderChunking(t *testing.T) {
	whole := make([]byte, 64)
	untwist.NewReader(lcg.New(7)).Read(whole)

	r := untwist.NewReader(lcg.New(7))
	var pieces []byte
	for _, n := range []int{1, 2, 5, 3, 7, 11, 35} {
		p := make([]byte, n)
		r.Read(p)
		pieces = append(pieces, p...)
	}
	if !slices.Equal(pieces, whole) {
		t.Fatalf("chunked read diverged:\n%v\n%v", pieces, whole)
	}
}

func TestSyncGenerator(t *testing.T) {
	const workers, draws = 4, 2000

	shared := untwist.NewSyncGenerator(platform.New(-0x3f97396e))
	var mu sync.Mutex
	var got []int32
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vs := make([]int32, draws)
			for i := range vs {
				vs[i] = shared.NextInt()
			}
			mu.Lock()
			got = append(got, vs...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	serial := platform.New(-0x3f97396e)
	want := make([]int32, workers*draws)
	for i := range want {
		want[i] = serial.NextInt()
	}
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatal("synchronized draws lost or repeated values")
	}
}
