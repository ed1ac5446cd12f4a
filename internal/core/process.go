package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyProcessSet = errors.New("empty process set")
	ErrDuplicatePid    = errors.New("duplicate pid")
	ErrInvalidPid      = errors.New("invalid pid")
	ErrInvalidBurst    = errors.New("invalid burst")
	ErrInvalidArrival  = errors.New("invalid arrival")
)

// Process describes one job handed to a scheduling policy.
// Priority is only read by the priority policy; a lower value is more urgent.
type Process struct {
	Pid      string
	Arrival  int
	Burst    int
	Priority int
}

// ProcessSet is a validated, read-only list of processes.
// The original order is kept because it breaks ties between simultaneous arrivals.
type ProcessSet struct {
	processes []Process
}

// NewProcessSet validates processes and returns them as a set.
// The first offending process is reported; nothing is corrected silently.
func NewProcessSet(processes ...Process) (ProcessSet, error) {
	if len(processes) == 0 {
		return ProcessSet{}, ErrEmptyProcessSet
	}

	seen := make(map[string]int, len(processes))
	totalBurst := 0
	latest := processes[0]
	for i, p := range processes {
		if p.Pid == "" {
			return ProcessSet{}, fmt.Errorf("%w: process #%d has an empty pid", ErrInvalidPid, i)
		}
		if p.Pid == IdlePid {
			return ProcessSet{}, fmt.Errorf("%w: process #%d uses the reserved pid %q", ErrInvalidPid, i, IdlePid)
		}
		if first, dup := seen[p.Pid]; dup {
			return ProcessSet{}, fmt.Errorf("%w: pid %q at #%d and #%d", ErrDuplicatePid, p.Pid, first, i)
		}
		seen[p.Pid] = i

		if p.Burst <= 0 {
			return ProcessSet{}, fmt.Errorf("%w: pid %q burst %d must be > 0", ErrInvalidBurst, p.Pid, p.Burst)
		}
		if p.Arrival < 0 {
			return ProcessSet{}, fmt.Errorf("%w: pid %q arrival %d must be >= 0", ErrInvalidArrival, p.Pid, p.Arrival)
		}

		if p.Burst > math.MaxInt-totalBurst {
			return ProcessSet{}, fmt.Errorf("%w: pid %q burst %d overflows the total burst time", ErrInvalidBurst, p.Pid, p.Burst)
		}
		totalBurst += p.Burst
		if p.Arrival > latest.Arrival {
			latest = p
		}
	}
	// the clock never passes the latest arrival plus all the work
	if latest.Arrival > math.MaxInt-totalBurst {
		return ProcessSet{}, fmt.Errorf("%w: pid %q arrival %d plus total burst %d overflows the clock",
			ErrInvalidArrival, latest.Pid, latest.Arrival, totalBurst)
	}

	owned := make([]Process, len(processes))
	copy(owned, processes)
	return ProcessSet{processes: owned}, nil
}

// Processes returns a copy of the processes in their original order.
func (s ProcessSet) Processes() []Process {
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}

func (s ProcessSet) Len() int { return len(s.processes) }

// TotalBurst is the CPU work needed to finish every process.
func (s ProcessSet) TotalBurst() int {
	total := 0
	for _, p := range s.processes {
		total += p.Burst
	}
	return total
}
