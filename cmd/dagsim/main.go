// Command dagsim runs a single named experiment from an XML experiment file
// and reports its makespan and CPU utilization.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"dagsim"
	"dagsim/internal/config"
	"dagsim/internal/logging"
)

var (
	app = kingpin.New("dagsim", "Discrete-event simulator for DAGs of compute tasks over networked hosts.")

	experimentsPath = app.Arg("experiments-xml", "path to the XML file describing one or more experiments").
		Required().String()

	experimentName = app.Flag("experiment", "name of the experiment to run").
		Short('e').Required().String()

	verbose = app.Flag("verbose", "log per-host statistics in the final summary").
		Short('v').Default("false").Bool()
)

func main() {
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := runExperiment(*experimentsPath, *experimentName, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runExperiment loads experimentsPath, resolves experimentName out of it,
// runs the simulation, and logs the result. Split out from main so it can
// be exercised directly in tests without going through kingpin's
// package-level flag variables.
func runExperiment(experimentsPath, experimentName string, verbose bool) error {
	logger := logging.Init(verbose)
	defer logger.Sync()

	runID := uuid.NewString()[:8]
	logger = logging.WithRunID(logger, runID)

	experiments, err := config.LoadExperiments(experimentsPath)
	if err != nil {
		return err
	}

	exp, err := config.GetExperiment(experiments, experimentName)
	if err != nil {
		return err
	}

	tasks, err := config.LoadTasks(exp.TasksCSVPath)
	if err != nil {
		return err
	}

	sim, err := dagsim.New(exp.Hosts, tasks, logger)
	if err != nil {
		return err
	}

	logger.Info("running experiment", zap.String("experiment", exp.Name))
	metrics := sim.Run()
	sim.LogSummary(metrics, verbose)

	return nil
}
