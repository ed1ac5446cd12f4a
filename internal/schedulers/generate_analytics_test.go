package schedulers

import (
	"errors"
	"reflect"
	"testing"

	"os-scheduling-simulator/internal/core"
)

func TestComputeMetricsFCFS(t *testing.T) {
	set := mustSet(t, core.Process{Pid: "P1", Arrival: 0, Burst: 4}, core.Process{Pid: "P2", Arrival: 1, Burst: 3})
	result, err := Simulate(set, FirstComeFirstServe)
	if err != nil {
		t.Fatal(err)
	}

	table, err := ComputeMetrics(result.Completions)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.MetricsRow{
		{Pid: "P1", Arrival: 0, Burst: 4, Completion: 4, Turnaround: 4, Waiting: 0},
		{Pid: "P2", Arrival: 1, Burst: 3, Completion: 7, Turnaround: 6, Waiting: 3},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("rows = %+v, want %+v", table.Rows, want)
	}
	if table.AverageWaiting != 1.5 {
		t.Errorf("average waiting = %v, want 1.5", table.AverageWaiting)
	}
	if table.AverageTurnaround != 5 {
		t.Errorf("average turnaround = %v, want 5", table.AverageTurnaround)
	}
}

func TestComputeMetricsAveragesMatchRows(t *testing.T) {
	for wi, processes := range propertyWorkloads {
		set := mustSet(t, processes...)
		for _, policy := range Policies {
			result, err := Simulate(set, policy, WithQuantum(3))
			if err != nil {
				t.Fatal(err)
			}
			table, err := ComputeMetrics(result.Completions)
			if err != nil {
				t.Fatal(err)
			}

			var waiting, turnaround int
			for _, row := range table.Rows {
				if row.Waiting < 0 {
					t.Errorf("workload %d %s: %s has negative waiting %d", wi, policy, row.Pid, row.Waiting)
				}
				if row.Turnaround != row.Completion-row.Arrival || row.Waiting != row.Turnaround-row.Burst {
					t.Errorf("workload %d %s: inconsistent row %+v", wi, policy, row)
				}
				waiting += row.Waiting
				turnaround += row.Turnaround
			}
			n := float64(len(table.Rows))
			if table.AverageWaiting != float64(waiting)/n || table.AverageTurnaround != float64(turnaround)/n {
				t.Errorf("workload %d %s: averages %v/%v do not match rows", wi, policy, table.AverageWaiting, table.AverageTurnaround)
			}
		}
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	if _, err := ComputeMetrics(nil); !errors.Is(err, core.ErrEmptyProcessSet) {
		t.Errorf("err = %v, want ErrEmptyProcessSet", err)
	}
}

func TestGenerateResponse(t *testing.T) {
	tests := []struct {
		name            string
		processes       []core.Process
		policy          Policy
		opts            []Option
		totalTime       int
		idleTime        int
		responseTimes   map[string]int
		avgResponse     float64
		cpuUtilization  float64
		timelineEntries int
	}{
		{
			"fcfs busy cpu",
			[]core.Process{{Pid: "P1", Arrival: 0, Burst: 4}, {Pid: "P2", Arrival: 1, Burst: 3}},
			FirstComeFirstServe, nil,
			7, 0, map[string]int{"P1": 0, "P2": 3}, 1.5, 1, 2,
		},
		{
			"round robin response times",
			[]core.Process{{Pid: "P1", Arrival: 0, Burst: 4}, {Pid: "P2", Arrival: 1, Burst: 3}},
			RoundRobin, []Option{WithQuantum(2)},
			7, 0, map[string]int{"P1": 0, "P2": 1}, 0.5, 1, 4,
		},
		{
			"sjf idle gap recorded",
			[]core.Process{{Pid: "P1", Arrival: 0, Burst: 2}, {Pid: "P2", Arrival: 5, Burst: 2}},
			ShortestJobFirst, nil,
			7, 3, map[string]int{"P1": 0, "P2": 0}, 0, 4.0 / 7.0, 3,
		},
		{
			"sjf idle gap skipped still counts as idle",
			[]core.Process{{Pid: "P1", Arrival: 0, Burst: 2}, {Pid: "P2", Arrival: 5, Burst: 2}},
			ShortestJobFirst, []Option{WithImplicitIdle()},
			7, 3, map[string]int{"P1": 0, "P2": 0}, 0, 4.0 / 7.0, 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Simulate(mustSet(t, tt.processes...), tt.policy, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			response, err := GenerateResponse(result)
			if err != nil {
				t.Fatal(err)
			}

			if response.Algorithm != tt.policy.String() {
				t.Errorf("algorithm = %q", response.Algorithm)
			}
			if response.TotalTime != tt.totalTime || response.IdleTime != tt.idleTime {
				t.Errorf("total/idle = %d/%d, want %d/%d", response.TotalTime, response.IdleTime, tt.totalTime, tt.idleTime)
			}
			if len(response.Timeline) != tt.timelineEntries {
				t.Errorf("timeline has %d entries, want %d", len(response.Timeline), tt.timelineEntries)
			}
			got := make(map[string]int)
			for _, d := range response.Details {
				got[d.ProcessId] = d.ResponseTime
			}
			if !reflect.DeepEqual(got, tt.responseTimes) {
				t.Errorf("response times = %v, want %v", got, tt.responseTimes)
			}
			if response.AverageResponseTime != tt.avgResponse {
				t.Errorf("average response = %v, want %v", response.AverageResponseTime, tt.avgResponse)
			}
			if diff := response.CpuUtilization - tt.cpuUtilization; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("utilization = %v, want %v", response.CpuUtilization, tt.cpuUtilization)
			}
			if want := float64(len(tt.processes)) / float64(tt.totalTime); response.CpuThroughput != want {
				t.Errorf("throughput = %v, want %v", response.CpuThroughput, want)
			}
		})
	}
}
