// internal/sched/trace.go

package sched

import (
	"encoding/csv"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Trace receives every scheduler event in emission order.
type Trace interface {
	Record(ev Event)
}

// CSVTrace writes events as CSV rows.
type CSVTrace struct {
	w *csv.Writer
}

// NewCSVTrace writes the header row and returns the trace. Flush must be
// called after the run to push buffered rows out.
func NewCSVTrace(w io.Writer) *CSVTrace {
	t := &CSVTrace{w: csv.NewWriter(w)}
	t.w.Write([]string{"time_ns", "event", "task_id", "vruntime", "ran_ns"})
	return t
}

func (t *CSVTrace) Record(ev Event) {
	t.w.Write([]string{
		strconv.FormatUint(ev.Time, 10),
		ev.Kind.String(),
		strconv.FormatUint(uint64(ev.PID), 10),
		strconv.FormatUint(ev.VRuntime, 10),
		strconv.FormatUint(ev.Ran, 10),
	})
}

func (t *CSVTrace) Flush() error {
	t.w.Flush()
	return t.w.Error()
}

// LogTrace mirrors events onto the process logger at debug level.
type LogTrace struct{}

func (LogTrace) Record(ev Event) {
	log.WithFields(log.Fields{
		"time_ns":  ev.Time,
		"task":     ev.PID,
		"vruntime": ev.VRuntime,
		"ran_ns":   ev.Ran,
	}).Debug(ev.Kind.String())
}

// MultiTrace fans one event out to several sinks.
type MultiTrace []Trace

func (m MultiTrace) Record(ev Event) {
	for _, t := range m {
		t.Record(ev)
	}
}
