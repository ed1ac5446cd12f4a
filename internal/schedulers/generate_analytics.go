package schedulers

import (
	"fmt"

	"os-scheduling-simulator/internal/core"
	"os-scheduling-simulator/internal/responses"
	"os-scheduling-simulator/internal/util"
)

// ComputeMetrics derives turnaround and waiting times for every record and
// their averages. Rows follow the order of records.
func ComputeMetrics(records []core.CompletionRecord) (core.MetricsTable, error) {
	if len(records) == 0 {
		return core.MetricsTable{}, fmt.Errorf("%w: no completion records", core.ErrEmptyProcessSet)
	}

	rows := make([]core.MetricsRow, 0, len(records))
	for _, record := range records {
		turnaround := record.Completion - record.Arrival
		rows = append(rows, core.MetricsRow{
			Pid:        record.Pid,
			Arrival:    record.Arrival,
			Burst:      record.Burst,
			Completion: record.Completion,
			Turnaround: turnaround,
			Waiting:    turnaround - record.Burst,
		})
	}

	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(rows)
	return core.MetricsTable{
		Rows:              rows,
		AverageWaiting:    averageWaitingTime,
		AverageTurnaround: averageTurnAroundTime,
	}, nil
}

// ResponseTimes maps each pid to the delay between its arrival and its first slice.
func ResponseTimes(timeline core.Timeline, records []core.CompletionRecord) map[string]int {
	firstRun := make(map[string]int, len(records))
	for _, event := range timeline {
		if event.Idle() {
			continue
		}
		if _, seen := firstRun[event.Pid]; !seen {
			firstRun[event.Pid] = event.Start
		}
	}

	responseTimes := make(map[string]int, len(records))
	for _, record := range records {
		if start, ok := firstRun[record.Pid]; ok {
			responseTimes[record.Pid] = start - record.Arrival
		}
	}
	return responseTimes
}

// GenerateResponse builds the full report of a simulation: timeline, per
// process timings, averages and cpu accounting.
func GenerateResponse(result Result) (responses.ScheduleResponse, error) {
	table, err := ComputeMetrics(result.Completions)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	responseTimes := ResponseTimes(result.Timeline, result.Completions)
	cpuMetric := core.MeasureCpu(result.Timeline)

	timeline := make([]responses.TimelineResponse, 0, len(result.Timeline))
	for _, event := range result.Timeline {
		timeline = append(timeline, responses.TimelineResponse{
			ProcessId: event.Pid,
			Start:     event.Start,
			End:       event.End,
		})
	}

	details := make([]responses.ProcessResponse, 0, len(table.Rows))
	responseValues := make([]int, 0, len(table.Rows))
	for _, row := range table.Rows {
		details = append(details, responses.ProcessResponse{
			ProcessId:      row.Pid,
			ArrivalTime:    row.Arrival,
			BurstTime:      row.Burst,
			CompletionTime: row.Completion,
			TurnAroundTime: row.Turnaround,
			WaitingTime:    row.Waiting,
			ResponseTime:   responseTimes[row.Pid],
		})
		responseValues = append(responseValues, responseTimes[row.Pid])
	}

	var response = responses.ScheduleResponse{
		Algorithm:             result.Policy.String(),
		TimeQuantum:           result.Quantum,
		Timeline:              timeline,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		AverageWaitingTime:    table.AverageWaiting,
		AverageResponseTime:   util.Mean(responseValues),
		AverageTurnAroundTime: table.AverageTurnaround,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(table.Rows)),
		Details:               details,
	}
	return response, nil
}
