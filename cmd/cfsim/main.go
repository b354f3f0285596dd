package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"cfsim/internal/report"
	"cfsim/internal/sched"
	"cfsim/internal/workload"
)

func main() {
	configPath := flag.String("config", "", "YAML scheduler parameter file (workload header takes precedence)")
	tracePath := flag.String("trace", "", "write a CSV event trace to this file")
	verbose := flag.Bool("v", false, "log scheduler decisions")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cfsim [-config params.yml] [-trace out.csv] [-v] workload.txt")
		os.Exit(1)
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(*configPath, *tracePath, *verbose, flag.Arg(0)); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(configPath, tracePath string, verbose bool, workloadPath string) error {
	cfg := sched.LoadConfig(configPath)

	wl, err := workload.ParseFile(workloadPath, cfg)
	if err != nil {
		return err
	}

	s := sched.New(wl.Config)

	var sinks sched.MultiTrace
	var csvTrace *sched.CSVTrace
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			return fmt.Errorf("open trace file: %w", err)
		}
		defer f.Close()
		csvTrace = sched.NewCSVTrace(f)
		sinks = append(sinks, csvTrace)
	}
	if verbose {
		sinks = append(sinks, sched.LogTrace{})
	}
	if len(sinks) > 0 {
		s.SetTrace(sinks)
	}

	for _, t := range wl.Tasks {
		if err := s.ScheduleTask(t); err != nil {
			return err
		}
	}
	s.RunAllTasks()

	if csvTrace != nil {
		if err := csvTrace.Flush(); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	return report.Write(os.Stdout, s.Completed(), s.Now())
}
