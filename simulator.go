package dagsim

import (
	"go.uber.org/zap"

	"dagsim/internal/config"
	"dagsim/internal/engine"
	"dagsim/internal/netlink"
	"dagsim/internal/process"
	"dagsim/internal/resource"
)

// Simulator holds a fully validated, dense-indexed experiment: its hosts
// and its tasks. Each call to Run builds a fresh engine for them. New does all the work of
// turning name-keyed configuration into this form; Run only ever sees
// indices.
type Simulator struct {
	hosts []Host
	tasks []Task
	log   *zap.Logger
}

// New resolves hosts and tasks into dense-indexed form and validates the
// result, returning a Simulator ready to Run. log may be nil, in which case
// a no-op logger is used.
func New(hostConfigs []config.HostConfig, taskRecords []config.TaskRecord, log *zap.Logger) (*Simulator, error) {
	resolvedHosts, resolvedTasks, err := config.Resolve(hostConfigs, taskRecords)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	hosts := make([]Host, len(resolvedHosts))
	for i, h := range resolvedHosts {
		hosts[i] = Host{Name: h.Name, Index: h.Index, CPUCores: h.CPUCores, RAMCapacity: h.RAM}
	}

	tasks := make([]Task, len(resolvedTasks))
	for i, t := range resolvedTasks {
		tasks[i] = Task{
			Name:             t.Name,
			Index:            t.Index,
			HostIndex:        t.HostIndex,
			InitialSleep:     t.InitialSleep,
			RunTime:          t.RunTime,
			RAMDemand:        t.RAMDemand,
			NetworkTime:      t.NetworkTime,
			PredecessorIndex: t.PredecessorIndex,
		}
	}

	return &Simulator{hosts: hosts, tasks: tasks, log: log}, nil
}

// Run drives every task through internal/process.Run on a single
// internal/engine.Scheduler and returns the resulting Metrics. It is a pure
// function of the Simulator's validated state: calling it twice on the same
// Simulator yields identical Metrics.
func (s *Simulator) Run() Metrics {
	sched := engine.NewScheduler()

	hostResources := make([]process.HostResources, len(s.hosts))
	for _, h := range s.hosts {
		hostResources[h.Index] = process.HostResources{
			CPU: resource.NewSemaphore(sched, int64(h.CPUCores)),
			RAM: resource.NewContainer(sched, h.RAMCapacity, h.RAMCapacity),
		}
	}

	link := netlink.NewMatrix(sched, len(s.hosts))

	completed := make([]*engine.Event, len(s.tasks))
	for i := range completed {
		completed[i] = sched.NewEvent()
	}

	specs := make([]process.Spec, len(s.tasks))
	for i, t := range s.tasks {
		specs[i] = process.Spec{
			Name:             t.Name,
			Index:            t.Index,
			HostIndex:        t.HostIndex,
			InitialSleep:     t.InitialSleep,
			RunTime:          t.RunTime,
			RAMDemand:        t.RAMDemand,
			NetworkTime:      t.NetworkTime,
			PredecessorIndex: t.PredecessorIndex,
		}
	}

	s.log.Info("starting simulation", zap.Int("tasks", len(s.tasks)), zap.Int("hosts", len(s.hosts)))

	for _, spec := range specs {
		spec := spec
		sched.Spawn(func(p *engine.Process) {
			process.Run(sched, p, spec, specs, hostResources, link, completed, s.log)
		})
	}

	sched.Run()

	return computeMetrics(s.hosts, s.tasks, sched.Now())
}

// Hosts returns the simulator's resolved, dense-indexed hosts.
func (s *Simulator) Hosts() []Host { return s.hosts }

// Tasks returns the simulator's resolved, dense-indexed tasks.
func (s *Simulator) Tasks() []Task { return s.tasks }

// LogSummary emits the Info-level block every run ends with: total
// simulation time, total CPU cores, CPU work, available time, idle time, and
// utilization, plus a per-host breakdown when verbose is set. Callers (the
// CLI) call it once they know whether --verbose was set.
func (s *Simulator) LogSummary(m Metrics, verbose bool) {
	var totalCores int
	for _, h := range s.hosts {
		totalCores += h.CPUCores
	}
	s.log.Info("simulation completed",
		zap.Int64("simulation_time", m.SimulationTime),
		zap.Int("cpu_cores_total", totalCores),
		zap.Int64("cpu_work_total", m.CPUWorkTotal),
		zap.Int64("cpu_time_available_total", m.CPUTimeAvailableTotal),
		zap.Int64("cpu_idle_total", m.CPUTimeAvailableTotal-m.CPUWorkTotal),
		zap.Float64("cpu_utilization", m.UtilizationTotal*100),
	)

	if !verbose {
		return
	}
	for _, h := range s.hosts {
		s.log.Info("host statistics",
			zap.String("host", h.Name),
			zap.Int("cpu_cores", h.CPUCores),
			zap.Int64("cpu_work", m.CPUWorkPerHost[h.Index]),
			zap.Int64("cpu_available", m.CPUTimeAvailablePerHost[h.Index]),
			zap.Int64("cpu_idle", m.CPUTimeAvailablePerHost[h.Index]-m.CPUWorkPerHost[h.Index]),
			zap.Float64("cpu_utilization", m.UtilizationPerHost[h.Index]*100),
		)
	}
}
