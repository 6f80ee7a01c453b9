// Package stream produces lazy, single-pass sequences of generated values.
// A Stream borrows its generator: the generator must outlive it, and two
// streams over one generator interleave their draws.
package stream

import (
	"iter"

	"github.com/tutils/untwist"
	"github.com/tutils/untwist/sampler"
)

// Stream is a forward-only sequence of values of one kind. It cannot be
// restarted; ranging over All twice continues where the first range stopped.
type Stream[T any] struct {
	draw      func() (T, error)
	remaining int64
	bounded   bool
	err       error
}

// Generate returns an unbounded stream of draw results. A draw error ends
// the stream.
func Generate[T any](draw func() (T, error)) *Stream[T] {
	return &Stream[T]{draw: draw}
}

// GenerateN returns a stream of at most count draw results; count <= 0 yields
// an empty stream.
func GenerateN[T any](count int64, draw func() (T, error)) *Stream[T] {
	return &Stream[T]{draw: draw, remaining: max(count, 0), bounded: true}
}

func infallible[T any](f func() T) func() (T, error) {
	return func() (T, error) { return f(), nil }
}

// Next returns the next value, or false once the stream is exhausted or a
// draw failed.
func (s *Stream[T]) Next() (T, bool) {
	var zero T
	if s.err != nil || (s.bounded && s.remaining <= 0) {
		return zero, false
	}
	v, err := s.draw()
	if err != nil {
		s.err = err
		return zero, false
	}
	if s.bounded {
		s.remaining--
	}
	return v, true
}

// Err returns the error that stopped the stream, if any.
func (s *Stream[T]) Err() error {
	return s.err
}

// Remaining returns the number of values left, or -1 for an unbounded stream.
func (s *Stream[T]) Remaining() int64 {
	if !s.bounded {
		return -1
	}
	return s.remaining
}

// All returns an iterator consuming the stream.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Take returns up to n next values.
func (s *Stream[T]) Take(n int) []T {
	vs := make([]T, 0, n)
	for len(vs) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Collect drains a bounded stream. It never returns for an unbounded one.
func (s *Stream[T]) Collect() []T {
	var vs []T
	if s.bounded && s.remaining < 1<<20 {
		vs = make([]T, 0, s.remaining)
	}
	for v := range s.All() {
		vs = append(vs, v)
	}
	return vs
}

// Ints returns an unbounded stream of NextInt values.
func Ints(g untwist.Generator) *Stream[int32] {
	return Generate(infallible(g.NextInt))
}

// IntsN returns a stream of count NextInt values.
func IntsN(g untwist.Generator, count int64) *Stream[int32] {
	return GenerateN(count, infallible(g.NextInt))
}

// IntsRange returns an unbounded stream of NextIntRange(origin, bound) values.
func IntsRange(g untwist.Generator, origin, bound int32) *Stream[int32] {
	return Generate(intRange(g, origin, bound))
}

// IntsRangeN returns a stream of count NextIntRange(origin, bound) values.
func IntsRangeN(g untwist.Generator, count int64, origin, bound int32) *Stream[int32] {
	return GenerateN(count, intRange(g, origin, bound))
}

func intRange(g untwist.Generator, origin, bound int32) func() (int32, error) {
	return func() (int32, error) {
		return g.NextIntRange(origin, bound)
	}
}

// Longs returns an unbounded stream of NextLong values.
func Longs(g untwist.Generator) *Stream[int64] {
	return Generate(infallible(g.NextLong))
}

// LongsN returns a stream of count NextLong values.
func LongsN(g untwist.Generator, count int64) *Stream[int64] {
	return GenerateN(count, infallible(g.NextLong))
}

// LongsRange returns an unbounded stream of values in [origin, bound).
func LongsRange(g untwist.Generator, origin, bound int64) *Stream[int64] {
	return Generate(longRange(g, origin, bound))
}

// LongsRangeN returns a stream of count values in [origin, bound).
func LongsRangeN(g untwist.Generator, count int64, origin, bound int64) *Stream[int64] {
	return GenerateN(count, longRange(g, origin, bound))
}

func longRange(g untwist.Generator, origin, bound int64) func() (int64, error) {
	return func() (int64, error) {
		return sampler.LongRange(g, origin, bound), nil
	}
}

// Floats returns an unbounded stream of NextFloat values.
func Floats(g untwist.Generator) *Stream[float32] {
	return Generate(infallible(g.NextFloat))
}

// FloatsN returns a stream of count NextFloat values.
func FloatsN(g untwist.Generator, count int64) *Stream[float32] {
	return GenerateN(count, infallible(g.NextFloat))
}

// Doubles returns an unbounded stream of NextDouble values.
func Doubles(g untwist.Generator) *Stream[float64] {
	return Generate(infallible(g.NextDouble))
}

// DoublesN returns a stream of count NextDouble values.
func DoublesN(g untwist.Generator, count int64) *Stream[float64] {
	return GenerateN(count, infallible(g.NextDouble))
}

// Booleans returns an unbounded stream of NextBoolean values.
func Booleans(g untwist.Generator) *Stream[bool] {
	return Generate(infallible(g.NextBoolean))
}

// BooleansN returns a stream of count NextBoolean values.
func BooleansN(g untwist.Generator, count int64) *Stream[bool] {
	return GenerateN(count, infallible(g.NextBoolean))
}
