package ring

import "sync/atomic"

// cell is a publish-once cache slot. Concurrent first computations may
// duplicate work; exactly one value wins publication and every read from
// then on observes the winner. There is no per-slot lock: losers discard
// their own result and adopt the published one.
type cell[T any] struct {
	p atomic.Pointer[T]
}

// get returns the published value, if any.
func (c *cell[T]) get() (T, bool) {
	if v := c.p.Load(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// publish installs v unless another value already won the race. It
// returns the value all callers observe from now on, and whether v won.
func (c *cell[T]) publish(v T) (T, bool) {
	if c.p.CompareAndSwap(nil, &v) {
		return v, true
	}
	return *c.p.Load(), false
}
