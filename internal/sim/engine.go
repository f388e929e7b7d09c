package sim

import (
	"github.com/me/schedsim/pkg/model"
)

// policy is the selection-and-requeue strategy plugged into the shared
// dispatch loop. The loop owns the clock, arrival admission, the dispatch
// cost, and the tie-break ordering; the policy owns only which process runs
// next, for how long, and where an expired process goes.
type policy interface {
	// admit places a newly arrived process into the ready structure.
	admit(ps *procState)
	// next removes and returns the process to dispatch, or nil if none ready.
	next() *procState
	// slice returns the run length granted to the selected process. The loop caps
	// it at the process's remaining service time.
	slice(ps *procState) int
	// requeue returns a process whose quantum expired before completion.
	// The loop guarantees all arrivals up to the expiry time were admitted
	// first, so requeued processes always land behind simultaneous arrivals.
	requeue(ps *procState)
	// pending reports whether any admitted process awaits dispatch.
	pending() bool
}

// run drives one simulation to termination under the shared clock/dispatch
// protocol:
//
//   - If nothing is ready, the clock jumps to the next arrival and every
//     process with arrival <= clock is admitted in arrival order.
//   - Every selection pays the dispatch cost, including back-to-back
//     re-dispatch of the same process.
//   - After each slice, arrivals up to and including the current time are
//     admitted BEFORE the preempted process is requeued.
//
// Termination: every iteration either consumes remaining service time or
// advances the clock to an arrival, so the loop finishes for any finite
// workload with positive service times.
func run(w model.Workload, pol policy, algo model.Algorithm) model.RunResult {
	all := newStates(w)
	n := len(all)

	clock := 0
	nextArrival := 0
	finished := 0

	admitUpTo := func(t int) {
		for nextArrival < n && all[nextArrival].proc.Arrival <= t {
			pol.admit(all[nextArrival])
			nextArrival++
		}
	}

	timeline := model.Timeline{}

	for finished < n {
		if !pol.pending() {
			if nextArrival >= n {
				panic("sim: nothing ready, no future arrivals, but unfinished processes remain")
			}
			// Idle: jump the clock to the next arrival.
			if arr := all[nextArrival].proc.Arrival; arr > clock {
				clock = arr
			}
			admitUpTo(clock)
			if !pol.pending() {
				continue
			}
		}

		// Only arrivals <= dispatch start are in the ready structure here.
		cur := pol.next()

		cpuStart := clock + w.DispatchCost
		timeline = append(timeline, model.Slice{Start: cpuStart, PID: cur.proc.ID})

		runLen := pol.slice(cur)
		if runLen > cur.remaining {
			runLen = cur.remaining
		}
		clock = cpuStart + runLen
		cur.remaining -= runLen

		if cur.remaining == 0 {
			cur.completion = clock
			finished++
			admitUpTo(clock)
		} else {
			// Arrivals at exactly the expiry time go in first.
			admitUpTo(clock)
			pol.requeue(cur)
		}
	}

	mustFinished(all)

	return model.RunResult{
		Algorithm: algo,
		Timeline:  timeline,
		Metrics:   reduce(all),
	}
}
