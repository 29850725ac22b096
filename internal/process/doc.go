// Package process implements the per-task cooperative procedure: initial
// delay, predecessor wait, optional cross-host network transfer, RAM
// acquisition, CPU acquisition, execution, and release, wired on top of
// internal/engine's scheduler and internal/resource's primitives.
package process
