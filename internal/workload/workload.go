package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"os-scheduling-simulator/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// Load reads a workload file. YAML and JSON files use the same keys as the
// HTTP request body; CSV files need a header row.
func Load(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return DecodeYAML(f)
	case ".csv":
		return DecodeCSV(f)
	}
	return requests.ScheduleRequests{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

func DecodeYAML(r io.Reader) (requests.ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	var request requests.ScheduleRequests
	if err := yaml.UnmarshalWithOptions(data, &request, yaml.DisallowUnknownField()); err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("decode workload: %w", err)
	}
	return request, nil
}

// DecodeCSV reads rows of process_id, arrival_time, burst_time and an
// optional priority. Columns are matched by header name in any order.
func DecodeCSV(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("read workload CSV: %w", err)
	}
	if len(rows) == 0 {
		return requests.ScheduleRequests{}, errors.New("workload CSV has no header row")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"process_id", "arrival_time", "burst_time"} {
		if _, ok := columns[required]; !ok {
			return requests.ScheduleRequests{}, fmt.Errorf("workload CSV is missing column %q", required)
		}
	}
	priorityColumn, hasPriority := columns["priority"]

	var request requests.ScheduleRequests
	for line, row := range rows[1:] {
		job := requests.Job{ProcessId: strings.TrimSpace(row[columns["process_id"]])}
		if job.ArrivalTime, err = parseField(row, columns["arrival_time"], line+2); err != nil {
			return requests.ScheduleRequests{}, err
		}
		if job.BurstTime, err = parseField(row, columns["burst_time"], line+2); err != nil {
			return requests.ScheduleRequests{}, err
		}
		if hasPriority && strings.TrimSpace(row[priorityColumn]) != "" {
			if job.Priority, err = parseField(row, priorityColumn, line+2); err != nil {
				return requests.ScheduleRequests{}, err
			}
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}

func parseField(row []string, column, line int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(row[column]))
	if err != nil {
		return 0, fmt.Errorf("line %d column %d: %w", line, column+1, err)
	}
	return value, nil
}
