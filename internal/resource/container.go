package resource

import (
	"github.com/gammazero/deque"

	"dagsim/internal/engine"
)

// containerWaiter is one pending Get or Put, queued until the container's
// level makes it satisfiable.
type containerWaiter struct {
	amount int64
	ev     *engine.Event
}

// Container is a level-bounded resource in [0, capacity], modeling a host's
// RAM. Get blocks until at least amount units are available and then debits
// them; Put blocks until there is room for amount units (this can only
// happen transiently, since callers never put back more than they got) and
// then credits them. Both sides queue FIFO and block head-of-line: a waiter
// that cannot yet be satisfied stalls every later waiter on the same side,
// even if a later one could be satisfied immediately.
type Container struct {
	sched    *engine.Scheduler
	capacity int64
	level    int64
	getQueue deque.Deque[*containerWaiter]
	putQueue deque.Deque[*containerWaiter]
}

// NewContainer returns a Container with the given capacity, initially
// filled to level.
func NewContainer(sched *engine.Scheduler, capacity, level int64) *Container {
	return &Container{sched: sched, capacity: capacity, level: level}
}

// Capacity returns the container's fixed upper bound.
func (c *Container) Capacity() int64 { return c.capacity }

// Level returns the container's current level. Intended for metrics and
// tests; callers must not use it to decide whether a Get or Put would
// succeed, since the level can change between the check and the call.
func (c *Container) Level() int64 { return c.level }

// Get suspends p until amount units are available, then debits them.
func (c *Container) Get(p *engine.Process, amount int64) {
	w := &containerWaiter{amount: amount, ev: c.sched.NewEvent()}
	c.getQueue.PushBack(w)
	c.settle()
	w.ev.Await(p)
}

// Put suspends p until there is room for amount units, then credits them.
// Putting more than the container's capacity is a programming error and
// panics.
func (c *Container) Put(p *engine.Process, amount int64) {
	if amount > c.capacity {
		panic("resource: put exceeds container capacity")
	}
	w := &containerWaiter{amount: amount, ev: c.sched.NewEvent()}
	c.putQueue.PushBack(w)
	c.settle()
	w.ev.Await(p)
}

// settle drains both queues from the front, alternating sides, until
// neither side's head waiter can make progress. A Get that succeeds lowers
// the level and can unblock a queued Put; a Put that succeeds raises it and
// can unblock a queued Get, so the two sides are drained to a fixed point
// rather than just once each.
func (c *Container) settle() {
	for {
		progressed := false
		for c.getQueue.Len() > 0 {
			w := c.getQueue.Front()
			if w.ev.Aborted() {
				c.getQueue.PopFront()
				progressed = true
				continue
			}
			if c.level < w.amount {
				break
			}
			c.getQueue.PopFront()
			c.level -= w.amount
			w.ev.Trigger()
			progressed = true
		}
		for c.putQueue.Len() > 0 {
			w := c.putQueue.Front()
			if w.ev.Aborted() {
				c.putQueue.PopFront()
				progressed = true
				continue
			}
			if c.level+w.amount > c.capacity {
				break
			}
			c.putQueue.PopFront()
			c.level += w.amount
			w.ev.Trigger()
			progressed = true
		}
		if !progressed {
			return
		}
	}
}
