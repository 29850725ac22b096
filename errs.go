package dagsim

import "dagsim/internal/config"

// ErrUnknownHost and ErrUnknownPredecessor re-export the config package's
// sentinel errors for callers that only import the root package: dagsim.New
// re-raises them while cross-referencing name-resolved tasks into the dense
// index form the simulator operates on (spec's dense-indexing boundary).
const (
	ErrUnknownHost        = config.ErrUnknownHost
	ErrUnknownPredecessor = config.ErrUnknownPredecessor
)
