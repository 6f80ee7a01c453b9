package period

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/untwist/counter"
)

var _ counter.Counter = &periodCounter{}

// periodCounter recomputes its rate at most once per period
type periodCounter struct {
	value      int64
	period     time.Duration
	ratePerSec int64

	lastValue int64
	lastTime  time.Time
	mut       sync.Mutex
}

func NewPeriodCounter(period time.Duration) counter.Counter {
	return &periodCounter{
		period:   period,
		lastTime: time.Now(),
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *periodCounter) RatePerSec() int64 {
	return atomic.LoadInt64(&c.ratePerSec)
}

// Add implements Counter.
func (c *periodCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.check()
}

func (c *periodCounter) check() {
	// hot path: other goroutines are already updating the rate
	if !c.mut.TryLock() {
		return
	}
	defer c.mut.Unlock()

	elapsed := time.Since(c.lastTime)
	if elapsed < c.period {
		return
	}

	value := c.Value()
	atomic.StoreInt64(&c.ratePerSec, int64(float64(value-c.lastValue)/elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = time.Now()
}
