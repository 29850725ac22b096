package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dagsim/internal/config"
)

func hosts() []config.HostConfig {
	return []config.HostConfig{
		{ID: "h0", CPUCores: 2, RAM: 100},
		{ID: "h1", CPUCores: 1, RAM: 50},
	}
}

func TestResolveAssignsDenseIndices(t *testing.T) {
	tasks := []config.TaskRecord{
		{Name: "t0", Host: "h0", RAM: 10},
		{Name: "t1", Host: "h1", RAM: 10, Dependency: "t0"},
	}
	rh, rt, err := config.Resolve(hosts(), tasks)
	require.NoError(t, err)
	require.Equal(t, 0, rh[0].Index)
	require.Equal(t, 1, rh[1].Index)
	require.Equal(t, 0, rt[1].PredecessorIndex)
	require.Equal(t, config.NoPredecessor, rt[0].PredecessorIndex)
}

func TestResolveUnknownHost(t *testing.T) {
	tasks := []config.TaskRecord{{Name: "t0", Host: "nope", RAM: 10}}
	_, _, err := config.Resolve(hosts(), tasks)
	require.ErrorIs(t, err, config.ErrUnknownHost)
}

func TestResolveUnknownPredecessor(t *testing.T) {
	tasks := []config.TaskRecord{{Name: "t0", Host: "h0", RAM: 10, Dependency: "ghost"}}
	_, _, err := config.Resolve(hosts(), tasks)
	require.ErrorIs(t, err, config.ErrUnknownPredecessor)
}

func TestResolveRAMExceedsCapacity(t *testing.T) {
	tasks := []config.TaskRecord{{Name: "t0", Host: "h1", RAM: 999}}
	_, _, err := config.Resolve(hosts(), tasks)
	require.ErrorIs(t, err, config.ErrRAMExceedsCapacity)
}

func TestResolveRejectsNonPositiveCPUCores(t *testing.T) {
	bad := []config.HostConfig{{ID: "h0", CPUCores: 0, RAM: 100}}
	_, _, err := config.Resolve(bad, nil)
	require.ErrorIs(t, err, config.ErrNonPositiveCPUCores)
}

func TestResolveRejectsNonPositiveRAM(t *testing.T) {
	bad := []config.HostConfig{{ID: "h0", CPUCores: 1, RAM: 0}}
	_, _, err := config.Resolve(bad, nil)
	require.ErrorIs(t, err, config.ErrNonPositiveRAM)
}

func TestResolveDetectsDirectCycle(t *testing.T) {
	tasks := []config.TaskRecord{
		{Name: "a", Host: "h0", RAM: 1, Dependency: "b"},
		{Name: "b", Host: "h0", RAM: 1, Dependency: "a"},
	}
	_, _, err := config.Resolve(hosts(), tasks)
	require.ErrorIs(t, err, config.ErrDependencyCycle)
}

func TestResolveDetectsLongerCycle(t *testing.T) {
	tasks := []config.TaskRecord{
		{Name: "a", Host: "h0", RAM: 1, Dependency: "c"},
		{Name: "b", Host: "h0", RAM: 1, Dependency: "a"},
		{Name: "c", Host: "h0", RAM: 1, Dependency: "b"},
	}
	_, _, err := config.Resolve(hosts(), tasks)
	require.ErrorIs(t, err, config.ErrDependencyCycle)
}

func TestResolveAcyclicChainIsFine(t *testing.T) {
	tasks := []config.TaskRecord{
		{Name: "a", Host: "h0", RAM: 1},
		{Name: "b", Host: "h0", RAM: 1, Dependency: "a"},
		{Name: "c", Host: "h0", RAM: 1, Dependency: "b"},
	}
	_, _, err := config.Resolve(hosts(), tasks)
	require.NoError(t, err)
}
