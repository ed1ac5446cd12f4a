package schedulers

import (
	"os-scheduling-simulator/internal/core"
)

// scheduleByKey runs the non-preemptive ready-queue loop shared by SJF and
// priority scheduling. Whenever the CPU frees up, the ready process with the
// smallest key runs to completion.
func scheduleByKey(set core.ProcessSet, key func(core.Process) int, implicitIdle bool) (core.Timeline, []core.CompletionRecord, error) {
	jobs := sortByArrival(set)
	incoming := &arrivals{jobs: jobs}
	readyQueue := newSelectionQueue(key)
	guard := newIterationGuard(set)

	timeline := make(core.Timeline, 0, len(jobs))
	completed := make(map[string]int, len(jobs))
	clock := jobs[0].Arrival

	for len(completed) < len(jobs) {
		if err := guard.step(); err != nil {
			return nil, nil, err
		}
		incoming.admit(clock, readyQueue.add)

		if readyQueue.empty() {
			if !incoming.pending() {
				return nil, nil, errStalled(completed, len(jobs))
			}
			next := incoming.nextArrival()
			if !implicitIdle {
				timeline = append(timeline, core.TimelineEvent{Pid: core.IdlePid, Start: clock, End: next})
			}
			clock = next
			continue
		}

		job, _ := readyQueue.pop()
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
