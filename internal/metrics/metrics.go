package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// OrderStats tracks submission outcomes across the order pipeline.
type OrderStats struct {
	Submitted Counter
	Rejected  Counter
	Persisted Counter
}

func NewOrderStats() *OrderStats {
	return &OrderStats{}
}

// Snapshot returns the current counter values for the health endpoint.
func (s *OrderStats) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"submitted": s.Submitted.Load(),
		"rejected":  s.Rejected.Load(),
		"persisted": s.Persisted.Load(),
	}
}
