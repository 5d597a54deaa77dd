package engine

import "sync/atomic"

// Sequencer hands out strictly increasing sequence numbers.
type Sequencer interface {
	Next() int64
}

// Clock is a monotonic logical clock for ordering results and trace events.
//
// All events are stamped with a strictly increasing seq from this clock, so
// a replay of the same input produces the same order.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// although the Driver only calls Next() from one goroutine.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}
