package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// Process is the immutable description of one job: who it is, when it
// arrives, and how much CPU time it needs. Created at workload-build time
// and never mutated; per-run bookkeeping lives in the simulator.
type Process struct {
	ID      string `json:"id"`      // "p" + nonnegative integer, e.g. "p3"
	Arrival int    `json:"arrival"` // >= 0
	Service int    `json:"service"` // > 0
}

func (p Process) String() string {
	return fmt.Sprintf("%s ArrTime=%d SrvTime=%d", p.ID, p.Arrival, p.Service)
}

// Workload is the full job set handed to the simulator: the dispatch
// (context-switch) cost and the processes sorted by non-decreasing arrival.
// The parser guarantees both invariants; the simulator re-checks neither.
type Workload struct {
	DispatchCost int       `json:"dispatch_cost"`
	Processes    []Process `json:"processes"`
}

var pidPattern = regexp.MustCompile(`^p(\d+)$`)

// PIDNumber extracts the numeric part of a process ID of the form p<number>.
// The number is used only for display ordering, never for scheduling.
func PIDNumber(id string) (int, error) {
	m := pidPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, fmt.Errorf("process ID must be of form p<number>, got %q", id)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("process ID numeric part too large: %q", id)
	}
	return n, nil
}
