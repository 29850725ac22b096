// Package engine implements the discrete-event core: a monotonic
// virtual-time scheduler driven by a min-heap of (time, sequence) ordered
// events, the one-shot Event broadcast primitive, and the Process fiber
// abstraction that lets task code suspend at well-defined points without
// introducing observable nondeterminism into the simulation.
package engine
