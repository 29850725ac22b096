package config

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TaskRecord is one parsed CSV row: a task's name, placement, timing,
// resource demand, and optional predecessor name (empty when there is
// none). Name resolution into dense indices happens one layer up, once all
// hosts and tasks are known together.
type TaskRecord struct {
	Name             string
	Host             string
	InitialSleepTime int64
	RunTime          int64
	RAM              int64
	NetworkTime      int64
	Dependency       string // "" if none
}

var csvColumns = []string{
	"TASK_NAME",
	"TASK_HOST",
	"TASK_INITIAL_SLEEP_TIME",
	"TASK_RUN_TIME",
	"TASK_RAM",
	"TASK_NETWORK_TIME",
	"TASK_DEPENDENCY",
}

// LoadTasks parses the CSV file at path into TaskRecords. The header must
// contain exactly the expected column set, in any order; extra or missing
// columns are both reported together as a single error.
func LoadTasks(path string) ([]TaskRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: opening task file %q", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading header of %q", path)
	}
	index, err := validateHeader(header)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %q", path)
	}

	var tasks []TaskRecord
	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "config: reading row %d of %q", rowNum+1, path)
		}
		rowNum++

		task, err := parseRow(row, index)
		if err != nil {
			return nil, errors.Wrapf(err, "config: row %d of %q", rowNum, path)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// validateHeader checks header against the exact expected column set
// (order-independent) and returns a name-to-position index. Mismatches
// report both the missing and the extra columns in one error, mirroring
// the original CSV parser's symmetric-difference check.
func validateHeader(header []string) (map[string]int, error) {
	trimmed := make([]string, len(header))
	for i, h := range header {
		trimmed[i] = strings.TrimSpace(h)
	}

	actual := make(map[string]bool, len(trimmed))
	for _, h := range trimmed {
		actual[h] = true
	}
	expected := make(map[string]bool, len(csvColumns))
	for _, c := range csvColumns {
		expected[c] = true
	}

	var missing, extra []string
	for _, c := range csvColumns {
		if !actual[c] {
			missing = append(missing, c)
		}
	}
	for _, h := range trimmed {
		if !expected[h] {
			extra = append(extra, h)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		index := make(map[string]int, len(trimmed))
		for i, h := range trimmed {
			index[h] = i
		}
		return index, nil
	}

	sort.Strings(missing)
	sort.Strings(extra)
	var msg strings.Builder
	msg.WriteString("invalid CSV header")
	if len(missing) > 0 {
		msg.WriteString(": missing columns: " + strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		if len(missing) > 0 {
			msg.WriteString(".")
		}
		msg.WriteString(" extra columns: " + strings.Join(extra, ", "))
	}
	return nil, errors.New(msg.String())
}

func parseRow(row []string, index map[string]int) (TaskRecord, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}

	name := field("TASK_NAME")
	if name == "" {
		return TaskRecord{}, errors.New("TASK_NAME cannot be empty")
	}

	initialSleep, err := strconv.ParseInt(field("TASK_INITIAL_SLEEP_TIME"), 10, 64)
	if err != nil {
		return TaskRecord{}, errors.Wrap(err, "TASK_INITIAL_SLEEP_TIME")
	}
	runTime, err := strconv.ParseInt(field("TASK_RUN_TIME"), 10, 64)
	if err != nil {
		return TaskRecord{}, errors.Wrap(err, "TASK_RUN_TIME")
	}
	ram, err := strconv.ParseInt(field("TASK_RAM"), 10, 64)
	if err != nil {
		return TaskRecord{}, errors.Wrap(err, "TASK_RAM")
	}
	networkTime, err := strconv.ParseInt(field("TASK_NETWORK_TIME"), 10, 64)
	if err != nil {
		return TaskRecord{}, errors.Wrap(err, "TASK_NETWORK_TIME")
	}

	task := TaskRecord{
		Name:             name,
		Host:             field("TASK_HOST"),
		InitialSleepTime: initialSleep,
		RunTime:          runTime,
		RAM:              ram,
		NetworkTime:      networkTime,
		Dependency:       field("TASK_DEPENDENCY"),
	}

	if err := validateTaskRecord(task); err != nil {
		return TaskRecord{}, err
	}
	return task, nil
}

func validateTaskRecord(t TaskRecord) error {
	if t.InitialSleepTime < 0 {
		return errors.Errorf("initial sleep time must be >= 0, got %d", t.InitialSleepTime)
	}
	if t.RunTime < 0 {
		return errors.Errorf("run time must be >= 0, got %d", t.RunTime)
	}
	if t.RAM < 0 {
		return errors.Errorf("RAM must be >= 0, got %d", t.RAM)
	}
	if t.NetworkTime < 0 {
		return errors.Errorf("network time must be >= 0, got %d", t.NetworkTime)
	}
	return nil
}
