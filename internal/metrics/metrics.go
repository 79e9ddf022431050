package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value atomic.Uint64
}

func (c *Counter) Inc() {
	c.value.Add(1)
}

func (c *Counter) Add(n uint64) {
	c.value.Add(n)
}

func (c *Counter) Load() uint64 {
	return c.value.Load()
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

// OrderStats counts order intake outcomes for the lifetime of the process.
type OrderStats struct {
	Created     Counter
	FirstOrders Counter
	Rejected    Counter
	Failed      Counter
}

type OrderSnapshot struct {
	Created     uint64 `json:"orders_created"`
	FirstOrders uint64 `json:"first_orders"`
	Rejected    uint64 `json:"orders_rejected"`
	Failed      uint64 `json:"creation_failures"`
}

func (s *OrderStats) Snapshot() OrderSnapshot {
	return OrderSnapshot{
		Created:     s.Created.Load(),
		FirstOrders: s.FirstOrders.Load(),
		Rejected:    s.Rejected.Load(),
		Failed:      s.Failed.Load(),
	}
}
