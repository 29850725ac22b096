package config

import (
	"github.com/pkg/errors"
)

// ResolvedHost is a HostConfig with its dense simulation index assigned.
type ResolvedHost struct {
	Name      string
	Index     int
	CPUCores  int
	RAM       int64
}

// ResolvedTask is a TaskRecord with names resolved to dense indices.
type ResolvedTask struct {
	Name             string
	Index            int
	HostIndex        int
	InitialSleep     int64
	RunTime          int64
	RAMDemand        int64
	NetworkTime      int64
	PredecessorIndex int // -1 if none
}

// NoPredecessor marks a ResolvedTask as having no predecessor.
const NoPredecessor = -1

// Resolve assigns dense indices to hosts (in declaration order) and tasks
// (in CSV row order), cross-references task host and predecessor names, and
// validates the whole set: unknown host or predecessor references, RAM
// demand exceeding its host's capacity, and dependency cycles are all
// reported here, before the simulator ever sees the data.
func Resolve(hosts []HostConfig, tasks []TaskRecord) ([]ResolvedHost, []ResolvedTask, error) {
	resolvedHosts := make([]ResolvedHost, len(hosts))
	hostIndex := make(map[string]int, len(hosts))
	for i, h := range hosts {
		if h.CPUCores <= 0 {
			return nil, nil, errors.Wrapf(ErrNonPositiveCPUCores, "host %q has %d cpu_cores", h.ID, h.CPUCores)
		}
		if h.RAM <= 0 {
			return nil, nil, errors.Wrapf(ErrNonPositiveRAM, "host %q has %d ram", h.ID, h.RAM)
		}
		resolvedHosts[i] = ResolvedHost{Name: h.ID, Index: i, CPUCores: h.CPUCores, RAM: h.RAM}
		hostIndex[h.ID] = i
	}

	taskIndex := make(map[string]int, len(tasks))
	for i, t := range tasks {
		taskIndex[t.Name] = i
	}

	resolvedTasks := make([]ResolvedTask, len(tasks))
	for i, t := range tasks {
		hi, ok := hostIndex[t.Host]
		if !ok {
			return nil, nil, errors.Wrapf(ErrUnknownHost, "task %q references host %q", t.Name, t.Host)
		}

		predIndex := NoPredecessor
		if t.Dependency != "" {
			pi, ok := taskIndex[t.Dependency]
			if !ok {
				return nil, nil, errors.Wrapf(ErrUnknownPredecessor, "task %q references predecessor %q", t.Name, t.Dependency)
			}
			predIndex = pi
		}

		if t.RAM > resolvedHosts[hi].RAM {
			return nil, nil, errors.Wrapf(ErrRAMExceedsCapacity,
				"task %q demands %d RAM on host %q (capacity %d)", t.Name, t.RAM, t.Host, resolvedHosts[hi].RAM)
		}

		resolvedTasks[i] = ResolvedTask{
			Name:             t.Name,
			Index:            i,
			HostIndex:        hi,
			InitialSleep:     t.InitialSleepTime,
			RunTime:          t.RunTime,
			RAMDemand:        t.RAM,
			NetworkTime:      t.NetworkTime,
			PredecessorIndex: predIndex,
		}
	}

	if err := detectCycle(resolvedTasks); err != nil {
		return nil, nil, err
	}

	return resolvedHosts, resolvedTasks, nil
}

// detectCycle runs the standard three-color DFS over the predecessor edges
// (each task has at most one, so the "graph" is a forest unless a cycle
// exists): white (unvisited), gray (on the current DFS path), black (fully
// explored). A gray node reached again means a cycle.
func detectCycle(tasks []ResolvedTask) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, len(tasks))

	var visit func(i int) error
	visit = func(i int) error {
		color[i] = gray
		if p := tasks[i].PredecessorIndex; p != NoPredecessor {
			switch color[p] {
			case white:
				if err := visit(p); err != nil {
					return err
				}
			case gray:
				return errors.Wrapf(ErrDependencyCycle, "cycle involves task %q", tasks[i].Name)
			}
		}
		color[i] = black
		return nil
	}

	for i := range tasks {
		if color[i] == white {
			if err := visit(i); err != nil {
				return err
			}
		}
	}
	return nil
}
