package schedulers

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"os-scheduling-simulator/internal/core"
)

// arrivals hands out processes, already sorted by arrival, as the clock reaches them.
type arrivals struct {
	jobs []core.Process
	next int
}

func (a *arrivals) pending() bool { return a.next < len(a.jobs) }

// nextArrival is only valid while pending() is true.
func (a *arrivals) nextArrival() int { return a.jobs[a.next].Arrival }

// admit calls add for every process that has arrived by clock, in arrival order.
func (a *arrivals) admit(clock int, add func(core.Process)) {
	for a.pending() && a.jobs[a.next].Arrival <= clock {
		add(a.jobs[a.next])
		a.next++
	}
}

// selectionQueue is the ready list of the non-preemptive key-based policies.
// Processes stay in insertion order; selection scans for the smallest key and
// keeps the first one found, so ties go to whoever entered the queue first.
type selectionQueue struct {
	list *arraylist.List
	key  func(core.Process) int
}

func newSelectionQueue(key func(core.Process) int) *selectionQueue {
	return &selectionQueue{list: arraylist.New(), key: key}
}

func (q *selectionQueue) add(p core.Process) { q.list.Add(p) }

func (q *selectionQueue) empty() bool { return q.list.Empty() }

// pop removes and returns the process with the smallest key.
func (q *selectionQueue) pop() (core.Process, bool) {
	if q.list.Empty() {
		return core.Process{}, false
	}

	best := 0
	first, _ := q.list.Get(0)
	bestKey := q.key(first.(core.Process))
	for i := 1; i < q.list.Size(); i++ {
		value, _ := q.list.Get(i)
		if k := q.key(value.(core.Process)); k < bestKey {
			best, bestKey = i, k
		}
	}

	value, _ := q.list.Get(best)
	q.list.Remove(best)
	return value.(core.Process), true
}

// fifoQueue is the round robin ready queue.
type fifoQueue struct {
	queue *linkedlistqueue.Queue
}

func newFifoQueue() *fifoQueue {
	return &fifoQueue{queue: linkedlistqueue.New()}
}

func (q *fifoQueue) push(p core.Process) { q.queue.Enqueue(p) }

func (q *fifoQueue) empty() bool { return q.queue.Empty() }

func (q *fifoQueue) pop() (core.Process, bool) {
	value, ok := q.queue.Dequeue()
	if !ok {
		return core.Process{}, false
	}
	return value.(core.Process), true
}
