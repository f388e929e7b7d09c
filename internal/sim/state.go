package sim

import (
	"fmt"

	"github.com/me/schedsim/pkg/model"
)

// procState is the mutable per-run bookkeeping for one process. Each
// simulation owns its own set of these; nothing is shared across runs.
type procState struct {
	proc       model.Process
	remaining  int // service time left, monotonically decreases to 0
	completion int // -1 until remaining reaches 0

	quantum int // SRR only: current quantum, grows on expiry
	level   int // FB only: current queue level, grows on expiry
}

// newStates builds the per-run state arena from an immutable workload.
func newStates(w model.Workload) []*procState {
	all := make([]*procState, len(w.Processes))
	for i, p := range w.Processes {
		all[i] = &procState{
			proc:       p,
			remaining:  p.Service,
			completion: -1,
		}
	}
	return all
}

// clampedInc increments v by one, capped at max. Used for the SRR quantum
// and the FB level, both of which only ever grow.
func clampedInc(v, max int) int {
	if v+1 > max {
		return max
	}
	return v + 1
}

// mustFinished asserts the run invariant that every process ended with a
// recorded completion time and zero remaining service. A violation is a bug
// in the dispatch protocol, not a user error.
func mustFinished(all []*procState) {
	for _, ps := range all {
		if ps.completion < 0 {
			panic(fmt.Sprintf("sim: process %s has no completion time", ps.proc.ID))
		}
		if ps.remaining != 0 {
			panic(fmt.Sprintf("sim: process %s finished with remaining=%d", ps.proc.ID, ps.remaining))
		}
	}
}
