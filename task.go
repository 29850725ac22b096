package dagsim

// NoPredecessor marks a Task as having no predecessor.
const NoPredecessor = -1

// Task describes one unit of work: its placement, timing, resource demand,
// and optional predecessor. Index is dense over [0, T) and assigned by New
// in the order tasks were loaded.
type Task struct {
	Name             string
	Index            int
	HostIndex        int
	InitialSleep     int64
	RunTime          int64
	RAMDemand        int64
	NetworkTime      int64
	PredecessorIndex int // NoPredecessor if none
}
