package resource

import (
	"github.com/gammazero/deque"

	"dagsim/internal/engine"
)

// semWaiter is one pending Request, queued until enough slots are free.
type semWaiter struct {
	amount int64
	ev     *engine.Event
}

// Token is proof of a granted Semaphore request. It must be released
// exactly once; releasing it a second time is a programming error and
// panics, since it would credit slots the holder no longer owns.
type Token struct {
	amount   int64
	released bool
}

// Semaphore is a counting resource in [0, capacity], modeling a host's CPU
// cores. Request blocks until amount slots are free and returns a Token for
// the caller to Release when done. Waiters queue FIFO and block head-of-line,
// same as Container.
type Semaphore struct {
	sched     *engine.Scheduler
	capacity  int64
	available int64
	queue     deque.Deque[*semWaiter]
}

// NewSemaphore returns a Semaphore with all capacity slots free.
func NewSemaphore(sched *engine.Scheduler, capacity int64) *Semaphore {
	return &Semaphore{sched: sched, capacity: capacity, available: capacity}
}

// Capacity returns the semaphore's fixed slot count.
func (s *Semaphore) Capacity() int64 { return s.capacity }

// Available returns the number of currently free slots. Intended for
// metrics and tests; racing it against a Request is meaningless since this
// package has no concurrent mutation within a single scheduler step.
func (s *Semaphore) Available() int64 { return s.available }

// Request suspends p until amount slots are free, debits them, and returns
// a Token the caller must Release exactly once.
func (s *Semaphore) Request(p *engine.Process, amount int64) *Token {
	token := &Token{amount: amount}
	w := &semWaiter{amount: amount, ev: s.sched.NewEvent()}
	s.queue.PushBack(w)
	s.settle()
	w.ev.Await(p)
	return token
}

// Release credits token's slots back and wakes any waiters it now
// satisfies. Releasing an already-released token panics.
func (s *Semaphore) Release(token *Token) {
	if token.released {
		panic("resource: semaphore token released twice")
	}
	token.released = true
	s.available += token.amount
	s.settle()
}

func (s *Semaphore) settle() {
	for s.queue.Len() > 0 {
		w := s.queue.Front()
		if w.ev.Aborted() {
			s.queue.PopFront()
			continue
		}
		if s.available < w.amount {
			break
		}
		s.queue.PopFront()
		s.available -= w.amount
		w.ev.Trigger()
	}
}
