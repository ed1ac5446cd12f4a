package schedulers

import (
	"os-scheduling-simulator/internal/core"
)

func scheduleShortestJobFirst(set core.ProcessSet, implicitIdle bool) (core.Timeline, []core.CompletionRecord, error) {
	return scheduleByKey(set, burstKey, implicitIdle)
}

func burstKey(p core.Process) int { return p.Burst }
