package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dagsim/internal/config"
)

func TestLoadExperimentsResolvesTasksPathRelativeToXMLDir(t *testing.T) {
	experiments, err := config.LoadExperiments("testdata/experiments.xml")
	require.NoError(t, err)
	require.Len(t, experiments, 1)

	exp, err := config.GetExperiment(experiments, "small")
	require.NoError(t, err)
	require.Equal(t, "small", exp.Name)
	require.Len(t, exp.Hosts, 2)
	require.Equal(t, filepath.Join("testdata", "tasks_small.csv"), exp.TasksCSVPath)
}

func TestGetExperimentUnknownNameErrors(t *testing.T) {
	experiments, err := config.LoadExperiments("testdata/experiments.xml")
	require.NoError(t, err)

	_, err = config.GetExperiment(experiments, "does-not-exist")
	require.ErrorIs(t, err, config.ErrUnknownExperiment)
}

func TestLoadExperimentsMissingFile(t *testing.T) {
	_, err := config.LoadExperiments("testdata/does-not-exist.xml")
	require.Error(t, err)
}
