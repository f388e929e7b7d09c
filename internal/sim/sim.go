// Package sim implements the scheduling simulation core: a shared
// clock/dispatch protocol driven over four selection policies (FCFS, RR,
// SRR, FB). Simulated time is a logical integer counter; given the same
// workload, every run is bit-for-bit reproducible.
//
// The simulator trusts its input. Workloads must arrive validated and
// sorted by non-decreasing arrival time (the parser's job); violations of
// internal invariants abort with a panic rather than producing wrong
// metrics.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/me/schedsim/pkg/model"
)

// Config holds the policy tunables. The defaults match the assignment's
// fixed values; tests occasionally tighten or loosen them.
type Config struct {
	RRQuantum         int // global round robin quantum
	SRRInitialQuantum int // per-process starting quantum
	SRRQuantumCap     int // per-process quantum ceiling
	FBLevelCount      int // number of feedback queues
	FBQuantum         int // quantum at every feedback level
}

// DefaultConfig returns the standard policy parameters: RR quantum 3,
// SRR quantum growing 3 to 6, four feedback levels with quantum 3.
func DefaultConfig() Config {
	return Config{
		RRQuantum:         3,
		SRRInitialQuantum: 3,
		SRRQuantumCap:     6,
		FBLevelCount:      4,
		FBQuantum:         3,
	}
}

// Simulator runs scheduling disciplines over workloads.
type Simulator struct {
	config Config
	logger *slog.Logger
}

// New creates a Simulator with the given policy parameters.
func New(cfg Config, logger *slog.Logger) *Simulator {
	return &Simulator{
		config: cfg,
		logger: logger.With("component", "sim"),
	}
}

// Run simulates one algorithm over the workload and returns its timeline
// and metrics. Each call owns a private copy of all mutable state, so
// concurrent Run calls over the same workload are safe.
func (s *Simulator) Run(w model.Workload, algo model.Algorithm) (model.RunResult, error) {
	pol, err := s.newPolicy(algo)
	if err != nil {
		return model.RunResult{}, err
	}

	res := run(w, pol, algo)
	s.logger.Debug("run complete",
		"algorithm", algo,
		"processes", len(w.Processes),
		"dispatches", len(res.Timeline),
		"mean_turnaround", res.Metrics.MeanTurnaround,
		"mean_waiting", res.Metrics.MeanWaiting,
	)
	return res, nil
}

// RunAll simulates every supported algorithm over the workload.
func (s *Simulator) RunAll(w model.Workload) (map[model.Algorithm]model.RunResult, error) {
	results := make(map[model.Algorithm]model.RunResult, len(model.Algorithms()))
	for _, algo := range model.Algorithms() {
		res, err := s.Run(w, algo)
		if err != nil {
			return nil, err
		}
		results[algo] = res
	}
	return results, nil
}

func (s *Simulator) newPolicy(algo model.Algorithm) (policy, error) {
	switch algo {
	case model.AlgorithmFCFS:
		return &fcfsPolicy{}, nil
	case model.AlgorithmRR:
		return &rrPolicy{quantum: s.config.RRQuantum}, nil
	case model.AlgorithmSRR:
		return &srrPolicy{initial: s.config.SRRInitialQuantum, cap: s.config.SRRQuantumCap}, nil
	case model.AlgorithmFB:
		return newFBPolicy(s.config.FBLevelCount, s.config.FBQuantum), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algo)
	}
}
