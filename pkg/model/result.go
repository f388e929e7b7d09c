package model

import "time"

// Algorithm identifies one of the supported scheduling disciplines.
type Algorithm string

const (
	AlgorithmFCFS Algorithm = "fcfs" // first-come-first-served, non-preemptive
	AlgorithmRR   Algorithm = "rr"   // round robin, fixed quantum
	AlgorithmSRR  Algorithm = "srr"  // selfish round robin, growing per-process quantum
	AlgorithmFB   Algorithm = "fb"   // four-level feedback, demotion only
)

// Algorithms returns all supported algorithms in canonical report order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmRR, AlgorithmSRR, AlgorithmFB}
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmFCFS, AlgorithmRR, AlgorithmSRR, AlgorithmFB:
		return true
	}
	return false
}

// Label returns the display name used in reports (matches the input format's
// conventions, e.g. "FCFS" rather than "fcfs").
func (a Algorithm) Label() string {
	switch a {
	case AlgorithmFCFS:
		return "FCFS"
	case AlgorithmRR:
		return "RR"
	case AlgorithmSRR:
		return "SRR"
	case AlgorithmFB:
		return "FB"
	}
	return string(a)
}

// Slice is one dispatch event: the CPU start time (after the dispatch cost
// has been paid) and the process that got the CPU.
type Slice struct {
	Start int    `json:"start"`
	PID   string `json:"pid"`
}

// Timeline is the ordered sequence of dispatch events of one run.
type Timeline []Slice

// ProcessMetrics holds the derived per-process figures of one run.
type ProcessMetrics struct {
	Completion int `json:"completion"`
	Turnaround int `json:"turnaround"` // completion - arrival
	Waiting    int `json:"waiting"`    // turnaround - service
}

// Metrics maps process IDs to their figures plus workload-wide means.
type Metrics struct {
	PerProcess     map[string]ProcessMetrics `json:"per_process"`
	MeanTurnaround float64                   `json:"mean_turnaround"`
	MeanWaiting    float64                   `json:"mean_waiting"`
}

// RunResult is the output of simulating one algorithm over one workload.
type RunResult struct {
	Algorithm Algorithm `json:"algorithm"`
	Timeline  Timeline  `json:"timeline"`
	Metrics   Metrics   `json:"metrics"`
}

// Run is a persisted simulation: one workload simulated under every
// algorithm, stored so results can be listed and fetched later.
type Run struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Workload  Workload                `json:"workload"`
	Results   map[Algorithm]RunResult `json:"results"`
	CreatedAt time.Time               `json:"created_at"`
}
