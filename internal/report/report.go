// Package report formats completion metrics for a finished simulation.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cfsim/internal/sched"
)

// Summary aggregates run-wide metrics over the completed roster.
type Summary struct {
	Tasks           int
	SimulatedNs     uint64
	AvgTurnaroundNs float64
	AvgResponseNs   float64
}

// Summarize computes the run summary. endNs is the simulated clock after
// the run drained.
func Summarize(completed []*sched.Task, endNs uint64) Summary {
	s := Summary{Tasks: len(completed), SimulatedNs: endNs}
	if len(completed) == 0 {
		return s
	}

	var turnaround, response uint64
	for _, t := range completed {
		turnaround += t.Metrics.Completion - t.Metrics.Arrival
		response += t.Metrics.FirstRun - t.Metrics.Arrival
	}
	n := float64(len(completed))
	s.AvgTurnaroundNs = float64(turnaround) / n
	s.AvgResponseNs = float64(response) / n
	return s
}

// Write renders the per-task table in completion order followed by the
// summary block.
func Write(w io.Writer, completed []*sched.Task, endNs uint64) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tNICE\tARRIVAL\tFIRST_RUN\tCOMPLETION\tTURNAROUND\tBURSTS")
	for _, t := range completed {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			t.PID, t.Nice,
			t.Metrics.Arrival, t.Metrics.FirstRun, t.Metrics.Completion,
			t.Metrics.Completion-t.Metrics.Arrival,
			t.Metrics.Bursts)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := Summarize(completed, endNs)
	_, err := fmt.Fprintf(w, "\ntasks: %d  simulated: %d ns  avg turnaround: %.0f ns  avg response: %.0f ns\n",
		s.Tasks, s.SimulatedNs, s.AvgTurnaroundNs, s.AvgResponseNs)
	return err
}
