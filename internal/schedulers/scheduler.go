package schedulers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"os-scheduling-simulator/internal/core"
)

var (
	ErrUnknownPolicy     = errors.New("unknown scheduling policy")
	ErrMissingQuantum    = errors.New("round robin requires a time quantum")
	ErrInvalidQuantum    = errors.New("invalid time quantum")
	ErrInternalInvariant = errors.New("internal invariant violation")
)

// Policy selects the scheduling algorithm.
type Policy int

const (
	FirstComeFirstServe Policy = iota
	ShortestJobFirst
	PriorityScheduling
	RoundRobin
)

// Policies lists every policy in the order reports show them.
var Policies = []Policy{FirstComeFirstServe, ShortestJobFirst, PriorityScheduling, RoundRobin}

func (p Policy) String() string {
	switch p {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF"
	case PriorityScheduling:
		return "PRIORITY"
	case RoundRobin:
		return "ROUND_ROBIN"
	default:
		return "UNKNOWN"
	}
}

// ParsePolicy accepts the short and long names of a policy, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first_come_first_serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest_job_first":
		return ShortestJobFirst, nil
	case "priority":
		return PriorityScheduling, nil
	case "rr", "round_robin", "round-robin":
		return RoundRobin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

type settings struct {
	quantum      int
	hasQuantum   bool
	implicitIdle bool
}

// Option tunes a single Simulate call.
type Option func(*settings)

// WithQuantum sets the round robin time slice. Other policies ignore it.
func WithQuantum(quantum int) Option {
	return func(s *settings) {
		s.quantum = quantum
		s.hasQuantum = true
	}
}

// WithImplicitIdle makes SJF, priority and round robin jump the clock over an
// empty CPU without recording an IDLE event. FCFS always records one.
func WithImplicitIdle() Option {
	return func(s *settings) {
		s.implicitIdle = true
	}
}

// Result is the output of one simulation.
type Result struct {
	Policy      Policy
	Quantum     int
	Timeline    core.Timeline
	Completions []core.CompletionRecord
}

// Simulate runs policy over set. Input problems are reported before any
// scheduling happens; a run either returns a full result or an error.
func Simulate(set core.ProcessSet, policy Policy, opts ...Option) (Result, error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	if set.Len() == 0 {
		return Result{}, core.ErrEmptyProcessSet
	}

	result := Result{Policy: policy}
	var err error
	switch policy {
	case FirstComeFirstServe:
		log.Println("running fcfs algorithm ...")
		result.Timeline, result.Completions, err = scheduleFirstComeFirstServe(set)
	case ShortestJobFirst:
		log.Println("running sjf algorithm ...")
		result.Timeline, result.Completions, err = scheduleShortestJobFirst(set, cfg.implicitIdle)
	case PriorityScheduling:
		log.Println("running priority algorithm ...")
		result.Timeline, result.Completions, err = schedulePriority(set, cfg.implicitIdle)
	case RoundRobin:
		if !cfg.hasQuantum {
			return Result{}, ErrMissingQuantum
		}
		if cfg.quantum <= 0 {
			return Result{}, fmt.Errorf("%w: %d must be > 0", ErrInvalidQuantum, cfg.quantum)
		}
		log.Println("running roundRobin algorithm with timeQuantum = ", cfg.quantum)
		result.Quantum = cfg.quantum
		result.Timeline, result.Completions, err = scheduleRoundRobin(set, cfg.quantum, cfg.implicitIdle)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(policy))
	}
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// sortByArrival orders a copy of the set by arrival time. Processes arriving
// together keep their original relative order.
func sortByArrival(set core.ProcessSet) []core.Process {
	processes := set.Processes()
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Arrival < processes[j].Arrival
	})
	return processes
}

// completionRecords lists completions in the set's original order.
func completionRecords(set core.ProcessSet, completed map[string]int) ([]core.CompletionRecord, error) {
	processes := set.Processes()
	records := make([]core.CompletionRecord, 0, len(processes))
	for _, p := range processes {
		completion, ok := completed[p.Pid]
		if !ok {
			return nil, fmt.Errorf("%w: pid %q never completed", ErrInternalInvariant, p.Pid)
		}
		records = append(records, core.CompletionRecord{
			Pid:        p.Pid,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			Completion: completion,
		})
	}
	return records, nil
}

// iterationGuard bounds a scheduling loop. Every iteration either runs at
// least one unit of work or admits at least one new process, so total burst
// plus process count is never exceeded by a correct engine.
type iterationGuard struct {
	limit int
	steps int
}

func newIterationGuard(set core.ProcessSet) *iterationGuard {
	limit := set.TotalBurst()
	if limit > math.MaxInt-set.Len() {
		limit = math.MaxInt
	} else {
		limit += set.Len()
	}
	return &iterationGuard{limit: limit}
}

func (g *iterationGuard) step() error {
	g.steps++
	if g.steps > g.limit {
		return fmt.Errorf("%w: exceeded %d scheduling iterations", ErrInternalInvariant, g.limit)
	}
	return nil
}

// errStalled reports an empty ready queue with nothing left to arrive while
// processes are still unfinished.
func errStalled(completed map[string]int, total int) error {
	return fmt.Errorf("%w: ready queue drained with %d of %d processes completed", ErrInternalInvariant, len(completed), total)
}
