package config

// sentinelError is a comparable, constant string error, the same pattern
// the teacher's own errs.go declares its sentinels with.
type sentinelError string

func (e sentinelError) Error() string { return string(e) }

// Semantic validation errors (spec §7's "semantic validation" family):
// surfaced from Resolve once an experiment's hosts and tasks have parsed
// successfully but don't describe a runnable simulation. ErrNoHosts and
// ErrEmptyTasksPath come from LoadExperiments, ErrUnknownExperiment from
// GetExperiment.
const (
	ErrUnknownHost         sentinelError = "config: task references an unknown host"
	ErrUnknownPredecessor  sentinelError = "config: task references an unknown predecessor"
	ErrDependencyCycle     sentinelError = "config: task dependency graph contains a cycle"
	ErrRAMExceedsCapacity  sentinelError = "config: task RAM demand exceeds its host's RAM capacity"
	ErrNonPositiveCPUCores sentinelError = "config: host must have at least one CPU core"
	ErrNonPositiveRAM      sentinelError = "config: host must have positive RAM capacity"
	ErrNoHosts             sentinelError = "config: experiment must declare at least one host"
	ErrEmptyTasksPath      sentinelError = "config: experiment must specify a tasks CSV path"
	ErrUnknownExperiment   sentinelError = "config: no experiment with that name"
)
