package core

// IdlePid marks a timeline interval where no process was on the CPU.
const IdlePid = "IDLE"

// TimelineEvent is one contiguous interval on the CPU, [Start, End).
type TimelineEvent struct {
	Pid   string
	Start int
	End   int
}

func (e TimelineEvent) Duration() int { return e.End - e.Start }

func (e TimelineEvent) Idle() bool { return e.Pid == IdlePid }

// Timeline is the Gantt sequence produced by a policy, ordered by start time.
type Timeline []TimelineEvent

// Start returns the start of the first event, or 0 for an empty timeline.
func (t Timeline) Start() int {
	if len(t) == 0 {
		return 0
	}
	return t[0].Start
}

// End returns the end of the last event, or 0 for an empty timeline.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// CompletionRecord is written once, when the last slice of a process ends.
type CompletionRecord struct {
	Pid        string
	Arrival    int
	Burst      int
	Completion int
}

// MetricsRow holds the derived timings of one process.
type MetricsRow struct {
	Pid        string
	Arrival    int
	Burst      int
	Completion int
	Turnaround int
	Waiting    int
}

type MetricsTable struct {
	Rows              []MetricsRow
	AverageWaiting    float64
	AverageTurnaround float64
}
