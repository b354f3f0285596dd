// Package workload parses simulation input files into a task set and
// scheduler parameters.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cfsim/internal/sched"
)

// Workload is a parsed simulation input.
type Workload struct {
	Config sched.Config
	Tasks  []*sched.Task
}

// A file carries two header lines (scheduling latency and minimum
// granularity, decimal seconds) followed by one task per line:
//
//	arrival_seconds nice duration_seconds
//
// Blank lines and lines starting with '#' are ignored. If the first
// meaningful line already has three fields the header is absent and base
// supplies the parameters. Seconds are scaled by 1e9 and truncated.

// ParseFile reads a workload from path. base supplies scheduler
// parameters when the file has no header.
func ParseFile(path string, base sched.Config) (*Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	wl, err := Parse(f, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

type line struct {
	no     int
	fields []string
}

// Parse reads a workload from r. Pids are assigned in file order,
// starting at 1.
func Parse(r io.Reader, base sched.Config) (*Workload, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, line{no: no, fields: strings.Fields(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}

	wl := &Workload{Config: base}

	if len(lines) > 0 && len(lines[0].fields) == 1 {
		if len(lines) < 2 || len(lines[1].fields) != 1 {
			return nil, fmt.Errorf("line %d: expected minimum granularity after scheduling latency", lines[0].no)
		}
		tq, err := secondsToNanos(lines[0].fields[0])
		if err != nil || tq == 0 {
			return nil, fmt.Errorf("line %d: scheduling latency must be a positive number of seconds", lines[0].no)
		}
		mg, err := secondsToNanos(lines[1].fields[0])
		if err != nil || mg == 0 {
			return nil, fmt.Errorf("line %d: minimum granularity must be a positive number of seconds", lines[1].no)
		}
		wl.Config.TimeQuantum = tq
		wl.Config.MinGranularity = mg
		lines = lines[2:]
	}

	for i, ln := range lines {
		t, err := parseTask(sched.TaskID(i+1), ln.fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln.no, err)
		}
		wl.Tasks = append(wl.Tasks, t)
	}
	return wl, nil
}

func parseTask(pid sched.TaskID, fields []string) (*sched.Task, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("expected 3 fields (arrival nice duration), got %d", len(fields))
	}

	arrival, err := secondsToNanos(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad arrival time %q", fields[0])
	}

	nice, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("bad nice value %q", fields[1])
	}
	if nice < sched.MinNice || nice > sched.MaxNice {
		return nil, fmt.Errorf("nice value %d outside [%d, %d]", nice, sched.MinNice, sched.MaxNice)
	}

	duration, err := secondsToNanos(fields[2])
	if err != nil || duration == 0 {
		return nil, fmt.Errorf("duration %q must be positive", fields[2])
	}

	return sched.NewTask(pid, nice, arrival, duration), nil
}

// secondsToNanos converts a decimal-seconds field to truncated
// nanoseconds.
func secondsToNanos(s string) (uint64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative time %q", s)
	}
	return uint64(v * 1e9), nil
}
