package config

import (
	"encoding/xml"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// HostConfig is one <host> element: its CPU core count and RAM capacity.
type HostConfig struct {
	ID       string `xml:"id,attr"`
	CPUCores int    `xml:"cpu_cores"`
	RAM      int64  `xml:"ram"`
}

// Experiment is one <experiment> element: a named set of hosts plus the
// resolved filesystem path to its task CSV.
type Experiment struct {
	Name         string
	Hosts        []HostConfig
	TasksCSVPath string
}

type xmlExperiment struct {
	Name  string       `xml:"name,attr"`
	Tasks string       `xml:"tasks"`
	Hosts []HostConfig `xml:"host"`
}

type xmlExperiments struct {
	XMLName     xml.Name        `xml:"experiments"`
	Experiments []xmlExperiment `xml:"experiment"`
}

// LoadExperiments parses every <experiment> in the XML file at path and
// resolves each one's <tasks> element relative to path's directory, the
// same resolution rule the original loader applies (a task CSV path is
// almost always given relative to its experiment file, not to the process's
// working directory).
func LoadExperiments(path string) (map[string]Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading experiment file %q", path)
	}

	var doc xmlExperiments
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "config: parsing experiment file %q", path)
	}

	dir := filepath.Dir(path)
	experiments := make(map[string]Experiment, len(doc.Experiments))

	for _, x := range doc.Experiments {
		if x.Name == "" {
			return nil, errors.Errorf("config: experiment in %q is missing its name attribute", path)
		}
		if x.Tasks == "" {
			return nil, errors.Wrapf(ErrEmptyTasksPath, "config: experiment %q", x.Name)
		}

		tasksPath := x.Tasks
		if !filepath.IsAbs(tasksPath) {
			tasksPath = filepath.Join(dir, tasksPath)
		}

		exp := Experiment{
			Name:         x.Name,
			TasksCSVPath: filepath.Clean(tasksPath),
			Hosts:        make([]HostConfig, 0, len(x.Hosts)),
		}
		for _, h := range x.Hosts {
			if h.ID == "" {
				return nil, errors.Errorf("config: experiment %q has a host missing its id attribute", x.Name)
			}
			exp.Hosts = append(exp.Hosts, h)
		}
		if len(exp.Hosts) == 0 {
			return nil, errors.Wrapf(ErrNoHosts, "config: experiment %q", x.Name)
		}

		experiments[x.Name] = exp
	}

	return experiments, nil
}

// GetExperiment looks up name among experiments, returning ErrUnknownExperiment
// if it isn't present.
func GetExperiment(experiments map[string]Experiment, name string) (Experiment, error) {
	exp, ok := experiments[name]
	if !ok {
		return Experiment{}, errors.Wrapf(ErrUnknownExperiment, "config: %q", name)
	}
	return exp, nil
}
