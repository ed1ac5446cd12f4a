package schedulers

import (
	"os-scheduling-simulator/internal/core"
)

func scheduleRoundRobin(set core.ProcessSet, timeQuantum int, implicitIdle bool) (core.Timeline, []core.CompletionRecord, error) {
	jobs := sortByArrival(set)
	incoming := &arrivals{jobs: jobs}
	roundRobinQueue := newFifoQueue()
	guard := newIterationGuard(set)

	remaining := make(map[string]int, len(jobs))
	for _, job := range jobs {
		remaining[job.Pid] = job.Burst
	}

	timeline := make(core.Timeline, 0, len(jobs))
	completed := make(map[string]int, len(jobs))
	clock := jobs[0].Arrival

	for len(completed) < len(jobs) {
		if err := guard.step(); err != nil {
			return nil, nil, err
		}
		incoming.admit(clock, roundRobinQueue.push)

		if roundRobinQueue.empty() {
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

		job, _ := roundRobinQueue.pop()
		runTime := min(timeQuantum, remaining[job.Pid])
		timeline = append(timeline, core.TimelineEvent{Pid: job.Pid, Start: clock, End: clock + runTime})
		remaining[job.Pid] -= runTime
		clock += runTime

		// processes that arrived during the slice go ahead of the preempted one
		incoming.admit(clock, roundRobinQueue.push)

		if remaining[job.Pid] > 0 {
			roundRobinQueue.push(job)
		} else {
			completed[job.Pid] = clock
		}
	}

	records, err := completionRecords(set, completed)
	if err != nil {
		return nil, nil, err
	}
	return timeline, records, nil
}
