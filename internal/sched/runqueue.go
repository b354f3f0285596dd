// internal/sched/runqueue.go

package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// nodeKey orders tasks inside a taskQueue. The pid secondary component
// makes every ordering total, so selection is deterministic.
type nodeKey struct {
	primary uint64
	id      TaskID
}

// cmp implements three-way comparison for red-black tree ordering.
// Explicit branches only; no subtraction of unsigned operands.
func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.primary < kb.primary:
		return -1
	case ka.primary > kb.primary:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

// keyFunc derives a task's tree key.
type keyFunc func(*Task) nodeKey

func byVruntime(t *Task) nodeKey { return nodeKey{t.VRuntime, t.PID} }
func byArrival(t *Task) nodeKey  { return nodeKey{t.Metrics.Arrival, t.PID} }

// taskQueue is an ordered index of task references over a red-black
// tree. The tree does not own the tasks; tasks outlive their residency.
// The leftmost task is cached so Min is O(1).
//
// A task's key fields must not change while it is resident. Remove the
// task, mutate, reinsert.
type taskQueue struct {
	rbt *redblacktree.Tree
	key keyFunc
	min *Task
}

func newTaskQueue(key keyFunc) *taskQueue {
	return &taskQueue{
		rbt: redblacktree.NewWith(cmp),
		key: key,
	}
}

// Insert adds t. The caller guarantees pid uniqueness.
func (q *taskQueue) Insert(t *Task) {
	q.rbt.Put(q.key(t), t)
	if q.min == nil || cmp(q.key(t), q.key(q.min)) < 0 {
		q.min = t
	}
}

// Remove takes t out of the queue; no-op if t is not resident.
func (q *taskQueue) Remove(t *Task) {
	q.rbt.Remove(q.key(t))
	if q.min == t {
		if node := q.rbt.Left(); node != nil {
			q.min = node.Value.(*Task)
		} else {
			q.min = nil
		}
	}
}

// Min returns the task with the smallest key, or nil if empty.
func (q *taskQueue) Min() *Task { return q.min }

// Len returns the current cardinality.
func (q *taskQueue) Len() int { return q.rbt.Size() }
