package engine

import (
	"cmp"

	"github.com/addrummond/heap"
)

// heapEntry is one pending scheduler action: run Run once virtual time
// reaches Time, breaking ties in the same order the entries were scheduled.
type heapEntry struct {
	Time int64
	Seq  uint64
	Run  func()
}

func (a *heapEntry) Cmp(b *heapEntry) int {
	if c := cmp.Compare(a.Time, b.Time); c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}

// Scheduler drives a single-threaded, virtual-time event loop: a min-heap of
// pending actions ordered by (fire time, sequence). Run pops the earliest
// action, advances Now() to its fire time, and invokes it, continuing until
// the heap is empty.
type Scheduler struct {
	now   int64
	seq   uint64
	queue heap.Heap[heapEntry, heap.Min]
}

// NewScheduler returns a Scheduler with virtual time at 0 and an empty queue.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() int64 {
	return s.now
}

func (s *Scheduler) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// schedule enqueues fn to run once virtual time reaches Now()+delay.
// Entries scheduled for the same instant run in the order they were
// scheduled (stable FIFO), using the monotonically increasing sequence
// number as the heap's secondary sort key.
func (s *Scheduler) schedule(delay int64, fn func()) {
	if delay < 0 {
		panic("engine: scheduled delay must be >= 0")
	}
	heap.PushOrderable(&s.queue, heapEntry{
		Time: s.now + delay,
		Seq:  s.nextSeq(),
		Run:  fn,
	})
}

// Timeout returns a fresh Event that fires after d ticks of virtual time.
// d must be >= 0.
func (s *Scheduler) Timeout(d int64) *Event {
	ev := s.NewEvent()
	s.schedule(d, ev.Trigger)
	return ev
}

// NewEvent returns a fresh, pending Event that the caller may Trigger at a
// time of its own choosing.
func (s *Scheduler) NewEvent() *Event {
	return &Event{sched: s, state: statePending}
}

// Run drains the event queue: while it is non-empty, pops the earliest
// entry, advances Now() to its fire time, and runs it. Terminates when the
// queue is empty, which is this simulation's definition of quiescence.
func (s *Scheduler) Run() {
	for {
		entry, ok := heap.PopOrderable(&s.queue)
		if !ok {
			return
		}
		s.now = entry.Time
		entry.Run()
	}
}
