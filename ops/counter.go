// Package ops provides a caller-visible accumulator for the number of
// elementary operations performed by the coding engine. Counting operations
// instead of wall time gives deterministic, timing-independent complexity
// measurements in tests and benchmarks.
package ops

import "sync/atomic"

// Counter accumulates elementary-operation counts. The zero value is ready to
// use, a nil *Counter is a valid no-op sink, and all methods are safe for
// concurrent use, so a single counter can be shared by several sessions.
type Counter struct {
	n atomic.Uint64
}

// NewCounter returns a fresh counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Add records n more elementary operations.
func (c *Counter) Add(n uint64) {
	if c == nil {
		return
	}
	c.n.Add(n)
}

// Value returns the number of operations recorded so far.
func (c *Counter) Value() uint64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	c.n.Store(0)
}
