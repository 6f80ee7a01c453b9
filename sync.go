package untwist

import (
	"sync"
)

var _ Generator = (*SyncGenerator)(nil)

// SyncGenerator is concurrency safe generator
type SyncGenerator struct {
	g  Generator
	mu sync.Mutex
}

// NewSyncGenerator create a new SyncGenerator. Only needed for generators
// without their own thread-safety guarantee.
func NewSyncGenerator(g Generator) *SyncGenerator {
	return &SyncGenerator{g: g}
}

func (s *SyncGenerator) NextInt() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextInt()
}

func (s *SyncGenerator) NextIntN(bound int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextIntN(bound)
}

func (s *SyncGenerator) NextIntRange(origin, bound int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextIntRange(origin, bound)
}

func (s *SyncGenerator) NextLong() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextLong()
}

func (s *SyncGenerator) NextLongN(bound int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextLongN(bound)
}

func (s *SyncGenerator) NextDouble() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextDouble()
}

func (s *SyncGenerator) NextFloat() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextFloat()
}

func (s *SyncGenerator) NextBoolean() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextBoolean()
}

func (s *SyncGenerator) NextBytes(buf []byte, start, length int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NextBytes(buf, start, length)
}
