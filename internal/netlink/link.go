package netlink

import (
	"fmt"

	"dagsim/internal/engine"
	"dagsim/internal/resource"
)

// Matrix arbitrates point-to-point transfers between hosts: each ordered
// pair (src, dst) with src != dst gets its own capacity-1 semaphore, so at
// most one transfer is in flight on a given directed link at a time, and
// transfers on disjoint links never contend with each other.
type Matrix struct {
	hostCount int
	links     map[[2]int]*resource.Semaphore
}

// NewMatrix builds the full H*(H-1) set of directed links for hostCount
// hosts, up front.
func NewMatrix(sched *engine.Scheduler, hostCount int) *Matrix {
	m := &Matrix{
		hostCount: hostCount,
		links:     make(map[[2]int]*resource.Semaphore, hostCount*(hostCount-1)),
	}
	for src := 0; src < hostCount; src++ {
		for dst := 0; dst < hostCount; dst++ {
			if src == dst {
				continue
			}
			m.links[[2]int{src, dst}] = resource.NewSemaphore(sched, 1)
		}
	}
	return m
}

// Acquire suspends p until the directed link from src to dst is free, and
// returns the token to Release when the transfer completes. It panics if
// src or dst is out of range or src == dst, since both are programming
// errors: the caller is expected to have already checked whether a
// transfer crosses hosts at all.
func (m *Matrix) Acquire(p *engine.Process, src, dst int) *resource.Token {
	sem, ok := m.links[[2]int{src, dst}]
	if !ok {
		panic(fmt.Sprintf("netlink: invalid link (%d -> %d) for %d hosts", src, dst, m.hostCount))
	}
	return sem.Request(p, 1)
}

// Release frees a link token acquired via Acquire.
func (m *Matrix) Release(src, dst int, token *resource.Token) {
	sem, ok := m.links[[2]int{src, dst}]
	if !ok {
		panic(fmt.Sprintf("netlink: invalid link (%d -> %d) for %d hosts", src, dst, m.hostCount))
	}
	sem.Release(token)
}
