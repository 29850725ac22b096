package dagsim

// Metrics reports the aggregate results of a completed simulation run, as
// described by spec §4.6: the makespan, CPU work totals, and per-host
// utilization. UtilizationPerHost and UtilizationTotal are fractions in
// [0, 1], not percentages; Host.Index indexes every per-host slice.
type Metrics struct {
	SimulationTime int64

	CPUWorkTotal   int64
	CPUWorkPerHost []int64

	CPUTimeAvailableTotal   int64
	CPUTimeAvailablePerHost []int64

	UtilizationTotal   float64
	UtilizationPerHost []float64
}

// computeMetrics derives Metrics from the final simulation time and the
// static task/host tables. Utilization is reported as 0 when its
// denominator (cpu_cores * simTime) is 0, matching spec §4.6 and the
// original simulator's run() (cpu_utilization defaults to 0.0 when
// total_cpu_time_available is 0).
func computeMetrics(hosts []Host, tasks []Task, simTime int64) Metrics {
	m := Metrics{
		SimulationTime:          simTime,
		CPUWorkPerHost:          make([]int64, len(hosts)),
		CPUTimeAvailablePerHost: make([]int64, len(hosts)),
		UtilizationPerHost:      make([]float64, len(hosts)),
	}

	for _, t := range tasks {
		m.CPUWorkTotal += t.RunTime
		m.CPUWorkPerHost[t.HostIndex] += t.RunTime
	}

	for _, h := range hosts {
		available := int64(h.CPUCores) * simTime
		m.CPUTimeAvailablePerHost[h.Index] = available
		m.CPUTimeAvailableTotal += available
		if available > 0 {
			m.UtilizationPerHost[h.Index] = float64(m.CPUWorkPerHost[h.Index]) / float64(available)
		}
	}

	if m.CPUTimeAvailableTotal > 0 {
		m.UtilizationTotal = float64(m.CPUWorkTotal) / float64(m.CPUTimeAvailableTotal)
	}

	return m
}
