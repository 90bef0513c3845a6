package search

import (
	"container/heap"
	"context"
	"errors"
)

// ErrDeadlineExceeded is returned by Run when ctx's deadline elapses
// before a goal state is found or the frontier empties.
var ErrDeadlineExceeded = errors.New("search: deadline exceeded")

// item pairs a node with its priority and insertion sequence for heap
// ordering. Lower priority values are popped first, mirroring the
// ascending-distance convention of a Dijkstra-style min-heap; ties break
// FIFO on seq, the insertion order, so two equally-promising nodes are
// explored in the order they were discovered rather than arbitrarily.
type item[T any] struct {
	node     T
	priority float64
	seq      int
}

// frontier is a min-heap of *item[T], following the same Len/Less/Swap/
// Push/Pop shape container/heap requires everywhere in this module.
type frontier[T any] []*item[T]

func (f frontier[T]) Len() int { return len(f) }
func (f frontier[T]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier[T]) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier[T]) Push(x interface{}) { *f = append(*f, x.(*item[T])) }
func (f *frontier[T]) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return it
}

// Frontier is the min-heap priority queue underlying every best-first
// search in this module: Push a node at a priority (lower pops first),
// Pop the most promising one, FIFO among ties. Driver.Run wraps one to
// drive a single-result search loop. Callers whose control flow does not
// fit that single Goal/Expand shape — the ensemble verifier's two-level
// refinement search, which accumulates several successors per pop and
// can stop mid-expansion — push and pop a Frontier directly instead of
// hand-rolling their own heap.Interface.
type Frontier[T any] struct {
	f    frontier[T]
	next int
}

// NewFrontier returns an empty Frontier.
func NewFrontier[T any]() *Frontier[T] {
	fr := &Frontier[T]{}
	heap.Init(&fr.f)
	return fr
}

// Push inserts node at the given priority; lower priorities pop first.
func (fr *Frontier[T]) Push(node T, priority float64) {
	heap.Push(&fr.f, &item[T]{node: node, priority: priority, seq: fr.next})
	fr.next++
}

// Pop removes and returns the lowest-priority node. ok is false if the
// frontier is empty.
func (fr *Frontier[T]) Pop() (node T, ok bool) {
	if fr.f.Len() == 0 {
		var zero T
		return zero, false
	}
	it := heap.Pop(&fr.f).(*item[T])
	return it.node, true
}

// Len reports the number of pending nodes.
func (fr *Frontier[T]) Len() int { return fr.f.Len() }

// Driver holds the callbacks a best-first search needs. Priority
// computes a node's ordering key (lower pops first); Goal reports
// whether a popped node satisfies the search's stopping condition;
// Expand returns a node's successors. None of the three may be nil.
type Driver[T any] struct {
	Priority func(T) float64
	Goal     func(T) bool
	Expand   func(T) []T
}

// Run drives a best-first search from roots until Goal reports true for
// some popped node (returned, ok=true), the frontier empties (ok=false,
// err=nil), or ctx's deadline elapses (err=ErrDeadlineExceeded). The
// deadline is polled once per pop, not inside Expand, so a single
// Expand call is never interrupted mid-way.
func (d Driver[T]) Run(ctx context.Context, roots []T) (result T, ok bool, err error) {
	fr := NewFrontier[T]()
	for _, r := range roots {
		fr.Push(r, d.Priority(r))
	}

	for fr.Len() > 0 {
		select {
		case <-ctx.Done():
			var zero T
			return zero, false, ErrDeadlineExceeded
		default:
		}

		top, _ := fr.Pop()
		if d.Goal(top) {
			return top, true, nil
		}

		for _, succ := range d.Expand(top) {
			fr.Push(succ, d.Priority(succ))
		}
	}

	var zero T
	return zero, false, nil
}
