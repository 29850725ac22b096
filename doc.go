// Package dagsim simulates the execution of a dependency graph of compute
// tasks across a small cluster of hosts connected by a fully-meshed
// point-to-point network. Given a set of hosts (CPU cores, RAM) and tasks
// (placement, timing, resource demand, optional predecessor), it drives a
// deterministic discrete-event simulation and reports the makespan and
// per-host CPU utilization.
//
// The simulation itself is single-threaded in its observable behavior: each
// task runs as a cooperative process (internal/process) suspending only at
// well-defined points (initial delay, predecessor wait, network transfer,
// RAM acquisition, CPU acquisition, execution), driven by a virtual-time
// event loop (internal/engine). Resource contention for RAM and CPU is
// arbitrated by FIFO-fair primitives (internal/resource), and point-to-point
// transfers are serialized per directed host pair (internal/netlink).
//
// Use the internal/config package to load hosts and tasks from XML and CSV,
// then New to validate and resolve them into a Simulator, then Run.
package dagsim
