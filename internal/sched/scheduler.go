// internal/sched/scheduler.go

package sched

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// NoTask marks last-run diagnostics before any dispatch happened.
const NoTask = ^TaskID(0)

// Scheduler drives a single simulated CPU under proportional fair
// scheduling. It is single-threaded; the clock is simulated and nothing
// here blocks.
type Scheduler struct {
	timeQuantum    uint64
	minGranularity uint64
	quantum        uint64 // per-burst slice, recomputed as ready cardinality changes

	clock   simClock
	ready   *taskQueue // keyed by (vruntime, pid)
	pending *taskQueue // keyed by (arrival, pid)

	completed   []*Task
	lastRunTask TaskID

	trace Trace
}

// New creates an idle scheduler from cfg. Both cfg times must be positive.
func New(cfg Config) *Scheduler {
	if cfg.TimeQuantum == 0 || cfg.MinGranularity == 0 {
		panic("sched: time quantum and min granularity must be positive")
	}
	return &Scheduler{
		timeQuantum:    cfg.TimeQuantum,
		minGranularity: cfg.MinGranularity,
		ready:          newTaskQueue(byVruntime),
		pending:        newTaskQueue(byArrival),
		lastRunTask:    NoTask,
	}
}

// SetTrace installs an event sink. Call before RunAllTasks; a nil sink
// discards events.
func (s *Scheduler) SetTrace(t Trace) { s.trace = t }

// Now returns the simulated clock in nanoseconds.
func (s *Scheduler) Now() uint64 { return s.clock.Now() }

// Completed returns finished tasks in completion order.
func (s *Scheduler) Completed() []*Task { return s.completed }

// LastRunTask returns the pid of the most recently dispatched task, or
// NoTask before the first dispatch.
func (s *Scheduler) LastRunTask() TaskID { return s.lastRunTask }

func (s *Scheduler) emit(ev Event) {
	if s.trace != nil {
		s.trace.Record(ev)
	}
}

// ScheduleTask accepts a task whose arrival has not yet passed into the
// pending set. PIDs must be unique across the simulation.
func (s *Scheduler) ScheduleTask(t *Task) error {
	if t.Metrics.Arrival < s.clock.Now() {
		return fmt.Errorf("task %d arrives at %d, before current time %d",
			t.PID, t.Metrics.Arrival, s.clock.Now())
	}
	s.pending.Insert(t)
	s.emit(Event{Time: s.clock.Now(), Kind: EventEnqueue, PID: t.PID, VRuntime: t.VRuntime})
	return nil
}

// admit moves a promoted task into the ready tree. The newcomer's
// vruntime is floored to the current ready minimum so a fresh task cannot
// monopolize the CPU with an artificially low vruntime.
func (s *Scheduler) admit(t *Task) {
	if t.Metrics.Arrival > s.clock.Now() {
		panic("sched: invariant violated: task promoted before its arrival")
	}
	if min := s.ready.Min(); min != nil && t.VRuntime < min.VRuntime {
		t.VRuntime = min.VRuntime
	}
	s.ready.Insert(t)
	s.recomputeQuantum()
	s.emit(Event{Time: s.clock.Now(), Kind: EventPromote, PID: t.PID, VRuntime: t.VRuntime})
}

// recomputeQuantum splits the latency target across the ready tasks,
// never below the granularity floor. With an empty ready tree the old
// value stands until the next admission.
func (s *Scheduler) recomputeQuantum() {
	n := uint64(s.ready.Len())
	if n == 0 {
		return
	}
	q := s.timeQuantum / n
	if q < s.minGranularity {
		q = s.minGranularity
	}
	s.quantum = q
}

// promote drains every pending task whose arrival has been reached.
// Idempotent within a tick: a second call with no clock advance finds
// nothing promotable.
func (s *Scheduler) promote() {
	for {
		t := s.pending.Min()
		if t == nil || t.Metrics.Arrival > s.clock.Now() {
			return
		}
		s.pending.Remove(t)
		s.admit(t)
	}
}

// vtick is the vruntime cost of one granularity tick for t: physical
// time scaled by Nice0/weight. Multiplication first to keep precision;
// the product fits uint64 for any realistic horizon.
func (s *Scheduler) vtick(t *Task) uint64 {
	return s.minGranularity * Nice0 / t.Weight
}

// shouldPreempt reports whether a newly promotable arrival would be
// fairer to run than the current task. The newcomer's vruntime is floored
// to the ready minimum, which excludes cur while it runs; admit, which runs
// after cur is requeued, can therefore floor the newcomer higher.
func (s *Scheduler) shouldPreempt(cur *Task) bool {
	nt := s.pending.Min()
	if nt == nil || nt.Metrics.Arrival > s.clock.Now() {
		return false
	}
	eff := nt.VRuntime
	if min := s.ready.Min(); min != nil && min.VRuntime > eff {
		eff = min.VRuntime
	}
	return eff < cur.VRuntime
}

// RunAllTasks drives the simulation until both trees drain. After it
// returns, Completed lists every task in the order it finished.
func (s *Scheduler) RunAllTasks() {
	for {
		s.promote()

		if s.ready.Len() == 0 {
			next := s.pending.Min()
			if next == nil {
				log.WithFields(log.Fields{
					"time_ns":   s.clock.Now(),
					"completed": len(s.completed),
				}).Info("workload drained")
				return
			}
			// idle gap: jump to the next arrival
			s.emit(Event{Time: s.clock.Now(), Kind: EventIdle, PID: next.PID})
			s.clock.AdvanceTo(next.Metrics.Arrival)
			continue
		}

		t := s.ready.Min()
		s.ready.Remove(t)
		s.lastRunTask = t.PID
		if !t.Metrics.Started {
			t.Metrics.Started = true
			t.Metrics.FirstRun = s.clock.Now()
		}
		t.Metrics.Bursts++
		s.emit(Event{Time: s.clock.Now(), Kind: EventDispatch, PID: t.PID, VRuntime: t.VRuntime})

		// per-burst vruntime budget
		targetV := t.VRuntime + s.quantum
		burstStart := s.clock.Now()

		var done bool
		for {
			done = t.Step(s.minGranularity)
			t.VRuntime += s.vtick(t)
			s.clock.Advance(s.minGranularity)
			if done || t.VRuntime >= targetV {
				break
			}
			if s.shouldPreempt(t) {
				break
			}
		}

		ran := s.clock.Now() - burstStart
		if done {
			t.Metrics.Completion = s.clock.Now()
			s.completed = append(s.completed, t)
			s.emit(Event{Time: s.clock.Now(), Kind: EventFinish, PID: t.PID, VRuntime: t.VRuntime, Ran: ran})
			log.WithFields(log.Fields{
				"task":       t.PID,
				"time_ns":    s.clock.Now(),
				"turnaround": s.clock.Now() - t.Metrics.Arrival,
				"bursts":     t.Metrics.Bursts,
			}).Debug("task finished")
		} else {
			s.ready.Insert(t)
			s.emit(Event{Time: s.clock.Now(), Kind: EventPreempt, PID: t.PID, VRuntime: t.VRuntime, Ran: ran})
		}
		s.recomputeQuantum()
	}
}
