package schedulers

import (
	"os-scheduling-simulator/internal/core"
)

// schedulePriority picks the ready process with the smallest priority number (1 = highest).
func schedulePriority(set core.ProcessSet, implicitIdle bool) (core.Timeline, []core.CompletionRecord, error) {
	return scheduleByKey(set, priorityKey, implicitIdle)
}

func priorityKey(p core.Process) int { return p.Priority }
