package schedulers

import (
	"os-scheduling-simulator/internal/core"
)

func scheduleFirstComeFirstServe(set core.ProcessSet) (core.Timeline, []core.CompletionRecord, error) {
	// sort jobs by arrival time
	jobs := sortByArrival(set)

	timeline := make(core.Timeline, 0, len(jobs))
	completed := make(map[string]int, len(jobs))
	clock := jobs[0].Arrival

	for _, job := range jobs {
		if clock < job.Arrival {
			// cpu is idle until the next arrival
			timeline = append(timeline, core.TimelineEvent{Pid: core.IdlePid, Start: clock, End: job.Arrival})
			clock = job.Arrival
		}
		timeline = append(timeline, core.TimelineEvent{Pid: job.Pid, Start: clock, End: clock + job.Burst})
		clock += job.Burst
		completed[job.Pid] = clock
	}

	records, err := completionRecords(set, completed)
	if err != nil {
		return nil, nil, err
	}
	return timeline, records, nil
}
