package process

import (
	"go.uber.org/zap"

	"dagsim/internal/engine"
	"dagsim/internal/netlink"
	"dagsim/internal/resource"
)

// NoPredecessor marks a Spec as having no predecessor.
const NoPredecessor = -1

// Spec describes everything a task process needs to run: its placement,
// timing, resource demand, and optional predecessor. It is a plain data
// struct so the engine package stays free of any domain vocabulary.
type Spec struct {
	Name             string
	Index            int
	HostIndex        int
	InitialSleep     int64
	RunTime          int64
	RAMDemand        int64
	NetworkTime      int64
	PredecessorIndex int // NoPredecessor if none
}

// HostResources is the pair of contended resources one host owns.
type HostResources struct {
	CPU *resource.Semaphore
	RAM *resource.Container
}

// Run drives one task through its full lifecycle as a Process body: initial
// delay, predecessor wait (plus, for a cross-host predecessor with nonzero
// network time, a serialized network transfer), RAM acquisition, CPU
// acquisition, execution, and release — signaling completed when done so any
// successor blocked on this task's completion event can proceed.
//
// The transfer delay always uses the *predecessor's* NetworkTime, not this
// task's own — a predecessor's network_time models the cost of shipping its
// own output to wherever it's needed next, so the successor pays it, not the
// other way around.
func Run(
	sched *engine.Scheduler,
	p *engine.Process,
	spec Spec,
	specs []Spec,
	hosts []HostResources,
	link *netlink.Matrix,
	completed []*engine.Event,
	log *zap.Logger,
) {
	log = log.With(zap.String("task", spec.Name))

	if spec.InitialSleep > 0 {
		log.Debug("sleeping before start", zap.Int64("duration", spec.InitialSleep))
		sched.Timeout(spec.InitialSleep).Await(p)
	}

	if spec.PredecessorIndex != NoPredecessor {
		pred := specs[spec.PredecessorIndex]
		log.Debug("waiting for predecessor", zap.String("predecessor", pred.Name))
		completed[spec.PredecessorIndex].Await(p)

		if pred.HostIndex != spec.HostIndex && pred.NetworkTime > 0 {
			log.Debug("waiting for network transmission",
				zap.String("from", pred.Name),
				zap.Int64("duration", pred.NetworkTime))

			token := link.Acquire(p, pred.HostIndex, spec.HostIndex)
			sched.Timeout(pred.NetworkTime).Await(p)
			link.Release(pred.HostIndex, spec.HostIndex, token)

			log.Debug("network transmission complete")
		}
	}

	host := hosts[spec.HostIndex]

	log.Debug("waiting for RAM", zap.Int64("amount", spec.RAMDemand))
	host.RAM.Get(p, spec.RAMDemand)

	log.Debug("waiting for a CPU core")
	cpuToken := host.CPU.Request(p, 1)

	log.Info("started execution", zap.Int64("ram", spec.RAMDemand))
	sched.Timeout(spec.RunTime).Await(p)
	log.Info("finished execution")

	host.CPU.Release(cpuToken)
	host.RAM.Put(p, spec.RAMDemand)
	log.Debug("released RAM", zap.Int64("amount", spec.RAMDemand))

	completed[spec.Index].Trigger()
}
