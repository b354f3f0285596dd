// internal/sched/event.go

package sched

// EventKind tags one scheduler decision in the trace.
type EventKind int

const (
	EventEnqueue  EventKind = iota // task accepted into the pending set
	EventPromote                   // pending -> ready, vruntime floored
	EventDispatch                  // ready minimum took the CPU
	EventPreempt                   // burst ended with work left
	EventFinish                    // remaining work reached zero
	EventIdle                      // clock about to jump over an arrival gap
)

// Event is one record in the simulation trace.
type Event struct {
	Time     uint64 // simulated ns at emission
	Kind     EventKind
	PID      TaskID
	VRuntime uint64
	Ran      uint64 // CPU ns granted during the burst; Preempt/Finish only
}

func (k EventKind) String() string {
	switch k {
	case EventEnqueue:
		return "Enqueue"
	case EventPromote:
		return "Promote"
	case EventDispatch:
		return "Dispatch"
	case EventPreempt:
		return "Preempt"
	case EventFinish:
		return "Finish"
	case EventIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}
