package engine

// eventState tracks an Event through its lifecycle: pending, momentarily
// triggered while its waiters are being handed off, then processed. Aborted
// is a terminal state reachable only via Abort, for the cancellation
// machinery spec §5 requires the core to tolerate without itself using.
type eventState int

const (
	statePending eventState = iota
	stateTriggered
	stateProcessed
	stateAborted
)

// Event is a one-shot broadcast signal. Suspended Processes register as
// waiters on a pending Event via Await; Trigger moves it from pending to
// triggered, schedules a zero-delay resume for every registered waiter in
// registration order, and leaves it processed. Awaiting an event that has
// already fired resumes the caller on the next scheduler step rather than
// synchronously, so observers can't assume same-step resumption.
type Event struct {
	sched   *Scheduler
	state   eventState
	waiters []func()
}

// Trigger fires ev. Re-triggering an event that is not pending (already
// triggered, processed, or aborted) is a no-op.
func (ev *Event) Trigger() {
	if ev.state != statePending {
		return
	}
	ev.state = stateTriggered
	waiters := ev.waiters
	ev.waiters = nil
	for _, resume := range waiters {
		ev.sched.schedule(0, resume)
	}
	ev.state = stateProcessed
}

// Await suspends p until ev fires, then resumes it. Awaiting an aborted
// event is a programming error.
func (ev *Event) Await(p *Process) {
	switch ev.state {
	case statePending:
		ev.waiters = append(ev.waiters, p.resumeStep)
	case stateTriggered, stateProcessed:
		ev.sched.schedule(0, p.resumeStep)
	case stateAborted:
		panic("engine: await on an aborted event")
	default:
		panic("engine: event in undefined state")
	}
	p.suspend()
}

// Abort marks a still-pending ev as aborted without firing it. Container
// and Semaphore waiter queues skip aborted head entries rather than
// blocking the rest of the queue behind them. The scheduler core never
// calls this itself.
func (ev *Event) Abort() {
	if ev.state == statePending {
		ev.state = stateAborted
		ev.waiters = nil
	}
}

// Aborted reports whether ev was aborted before it could fire.
func (ev *Event) Aborted() bool {
	return ev.state == stateAborted
}

// Pending reports whether ev has neither fired nor been aborted yet.
func (ev *Event) Pending() bool {
	return ev.state == statePending
}
