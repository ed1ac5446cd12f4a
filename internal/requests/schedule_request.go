package requests

import (
	"os-scheduling-simulator/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Algorithm   string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	TimeQuantum *int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	Jobs        []Job  `json:"jobs" yaml:"jobs"`
}

// ProcessSet validates the jobs and converts them, keeping their order.
func (r ScheduleRequests) ProcessSet() (core.ProcessSet, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			Pid:      job.ProcessId,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: job.Priority,
		})
	}
	return core.NewProcessSet(processes...)
}
