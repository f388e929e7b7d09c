package sim

import (
	"github.com/me/schedsim/pkg/model"
)

// reduce derives per-process completion, turnaround, and waiting figures
// plus workload-wide means from the finished state arena.
//
// turnaround = completion - arrival; waiting = turnaround - service.
// Both are guaranteed nonnegative for any correct run (a process cannot
// spend less time in the system than it spends executing).
func reduce(all []*procState) model.Metrics {
	per := make(map[string]model.ProcessMetrics, len(all))
	var sumTAT, sumWait int

	for _, ps := range all {
		tat := ps.completion - ps.proc.Arrival
		wait := tat - ps.proc.Service
		per[ps.proc.ID] = model.ProcessMetrics{
			Completion: ps.completion,
			Turnaround: tat,
			Waiting:    wait,
		}
		sumTAT += tat
		sumWait += wait
	}

	m := model.Metrics{PerProcess: per}
	if len(all) > 0 {
		m.MeanTurnaround = float64(sumTAT) / float64(len(all))
		m.MeanWaiting = float64(sumWait) / float64(len(all))
	}
	return m
}
