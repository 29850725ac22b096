package resource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dagsim/internal/engine"
	"dagsim/internal/resource"
)

func TestSemaphoreRequestSucceedsImmediatelyWhenSlotsAreFree(t *testing.T) {
	sched := engine.NewScheduler()
	s := resource.NewSemaphore(sched, 4)
	var tok *resource.Token
	sched.Spawn(func(p *engine.Process) {
		tok = s.Request(p, 3)
	})
	sched.Run()
	require.NotNil(t, tok)
	require.Equal(t, int64(1), s.Available())
}

func TestSemaphoreRequestBlocksUntilReleaseFreesSlots(t *testing.T) {
	sched := engine.NewScheduler()
	s := resource.NewSemaphore(sched, 2)
	var order []string

	sched.Spawn(func(p *engine.Process) {
		tok := s.Request(p, 2)
		sched.Timeout(5).Await(p)
		s.Release(tok)
		order = append(order, "released")
	})
	sched.Spawn(func(p *engine.Process) {
		s.Request(p, 2) // blocks until the above releases
		order = append(order, "acquired")
	})

	sched.Run()

	require.Equal(t, []string{"released", "acquired"}, order)
	require.Equal(t, int64(0), s.Available())
}

func TestSemaphoreQueueBlocksHeadOfLine(t *testing.T) {
	sched := engine.NewScheduler()
	s := resource.NewSemaphore(sched, 4)
	var order []string

	// Two holders pin all 4 slots.
	var tokA, tokB *resource.Token
	sched.Spawn(func(p *engine.Process) { tokA = s.Request(p, 2) })
	sched.Spawn(func(p *engine.Process) { tokB = s.Request(p, 2) })

	sched.Spawn(func(p *engine.Process) {
		sched.Timeout(1).Await(p)
		s.Request(p, 3) // needs 3; only 2 will be free after the first release
		order = append(order, "big")
	})
	sched.Spawn(func(p *engine.Process) {
		sched.Timeout(1).Await(p)
		s.Request(p, 1) // would succeed with 2 free, but queued behind "big"
		order = append(order, "small")
	})

	sched.Spawn(func(p *engine.Process) {
		sched.Timeout(1).Await(p)
		s.Release(tokA) // frees 2: not enough for "big", must not let "small" through
	})
	sched.Spawn(func(p *engine.Process) {
		sched.Timeout(2).Await(p)
		s.Release(tokB) // frees the remaining 2: now "big" (then "small") can proceed
	})

	sched.Run()

	require.Equal(t, []string{"big", "small"}, order)
}

func TestSemaphoreDoubleReleasePanics(t *testing.T) {
	sched := engine.NewScheduler()
	s := resource.NewSemaphore(sched, 1)
	sched.Spawn(func(p *engine.Process) {
		tok := s.Request(p, 1)
		s.Release(tok)
		require.Panics(t, func() { s.Release(tok) })
	})
	sched.Run()
}
