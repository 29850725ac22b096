// Package config loads experiments from XML, task sets from CSV, and
// resolves and validates the two into the dense-indexed host/task tables
// the simulator operates on.
package config
