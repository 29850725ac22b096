package dagsim

// Host describes one node in the cluster: its identifier, dense index, CPU
// core count, and RAM capacity. Each Host owns one CPU semaphore (slots =
// CPUCores) and one RAM container (capacity = init level = RAMCapacity).
type Host struct {
	Name        string
	Index       int
	CPUCores    int
	RAMCapacity int64
}
