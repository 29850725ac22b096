package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"dagsim/internal/config"
)

func TestLoadTasksParsesAllColumns(t *testing.T) {
	tasks, err := config.LoadTasks("testdata/tasks_small.csv")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	require.Equal(t, config.TaskRecord{
		Name: "t0", Host: "host-a", RunTime: 10, RAM: 128,
	}, tasks[0])
	require.Equal(t, "t0", tasks[1].Dependency)
	require.Equal(t, int64(2), tasks[2].NetworkTime)
}

func TestLoadTasksRejectsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.csv"
	writeFile(t, path, "TASK_NAME,TASK_HOST,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\nt0,h,1,1,0,\n")

	_, err := config.LoadTasks(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TASK_INITIAL_SLEEP_TIME")
}

func TestLoadTasksRejectsExtraColumn(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.csv"
	writeFile(t, path, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY,EXTRA\nt0,h,0,1,1,0,,x\n")

	_, err := config.LoadTasks(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "EXTRA")
}

func TestLoadTasksRejectsEmptyName(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.csv"
	writeFile(t, path, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\n,h,0,1,1,0,\n")

	_, err := config.LoadTasks(path)
	require.Error(t, err)
}

func TestLoadTasksRejectsNegativeDuration(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.csv"
	writeFile(t, path, "TASK_NAME,TASK_HOST,TASK_INITIAL_SLEEP_TIME,TASK_RUN_TIME,TASK_RAM,TASK_NETWORK_TIME,TASK_DEPENDENCY\nt0,h,-1,1,1,0,\n")

	_, err := config.LoadTasks(path)
	require.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
