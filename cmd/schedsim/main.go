package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"os-scheduling-simulator/config"
	"os-scheduling-simulator/internal/report"
	"os-scheduling-simulator/internal/schedulers"
	"os-scheduling-simulator/internal/workload"
)

func main() {
	workloadPath := flag.String("workload", "", "process list file (.yaml, .yml, .json or .csv)")
	algorithm := flag.String("algorithm", "", "fcfs, sjf, priority, rr or all (default: the file's algorithm, else all)")
	quantum := flag.Int("quantum", 0, "round robin time quantum (default: the file's, else the config's)")
	configPath := flag.String("config", "", "config file (default: ./config.yaml if present)")
	implicitIdle := flag.Bool("implicit-idle", false, "do not record IDLE slices for SJF, priority and round robin")
	flag.Parse()

	// an explicit -quantum, even 0, overrides the file and config values
	var quantumFlag *int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "quantum" {
			quantumFlag = quantum
		}
	})

	if err := run(*workloadPath, *algorithm, quantumFlag, *configPath, *implicitIdle); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(workloadPath, algorithm string, quantum *int, configPath string, implicitIdle bool) error {
	if workloadPath == "" {
		flag.Usage()
		return fmt.Errorf("-workload is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	request, err := workload.Load(workloadPath)
	if err != nil {
		return err
	}
	set, err := request.ProcessSet()
	if err != nil {
		return err
	}

	if algorithm == "" {
		algorithm = request.Algorithm
	}
	policies := schedulers.Policies
	if algorithm != "" && !strings.EqualFold(algorithm, "all") {
		policy, err := schedulers.ParsePolicy(algorithm)
		if err != nil {
			return err
		}
		policies = []schedulers.Policy{policy}
	}

	var opts []schedulers.Option
	switch {
	case quantum != nil:
		opts = append(opts, schedulers.WithQuantum(*quantum))
	case request.TimeQuantum != nil:
		opts = append(opts, schedulers.WithQuantum(*request.TimeQuantum))
	case cfg.RoundRobinTimeQuantum > 0:
		opts = append(opts, schedulers.WithQuantum(cfg.RoundRobinTimeQuantum))
	}
	if implicitIdle || cfg.ImplicitIdle {
		opts = append(opts, schedulers.WithImplicitIdle())
	}

	for _, policy := range policies {
		result, err := schedulers.Simulate(set, policy, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", policy, err)
		}
		response, err := schedulers.GenerateResponse(result)
		if err != nil {
			return err
		}
		report.Render(os.Stdout, response)
	}
	log.Printf("simulated %d processes from %s", set.Len(), workloadPath)
	return nil
}
