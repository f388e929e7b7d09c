package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/me/schedsim/pkg/model"
)

func sampleRun() *model.Run {
	return &model.Run{
		ID:   "run_test",
		Name: "sample",
		Workload: model.Workload{
			DispatchCost: 1,
			Processes: []model.Process{
				{ID: "p1", Arrival: 0, Service: 5},
				{ID: "p2", Arrival: 2, Service: 3},
			},
		},
		Results: map[model.Algorithm]model.RunResult{
			model.AlgorithmFCFS: {
				Algorithm: model.AlgorithmFCFS,
				Timeline: model.Timeline{
					{Start: 1, PID: "p1"},
					{Start: 7, PID: "p2"},
				},
				Metrics: model.Metrics{
					PerProcess: map[string]model.ProcessMetrics{
						"p1": {Completion: 6, Turnaround: 6, Waiting: 1},
						"p2": {Completion: 10, Turnaround: 8, Waiting: 5},
					},
					MeanTurnaround: 7,
					MeanWaiting:    3,
				},
			},
		},
	}
}

func TestWriteRun_ContainsTimelineAndTables(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).WriteRun(sampleRun())
	out := buf.String()

	for _, want := range []string{
		"FCFS:",
		"T1: p1",
		"T7: p2",
		"TURNAROUND",
		"7.00",
		"3.00",
		"Summary",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRun_TimelineOrderPreserved(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).WriteRun(sampleRun())
	out := buf.String()

	if strings.Index(out, "T1: p1") > strings.Index(out, "T7: p2") {
		t.Errorf("timeline entries out of order:\n%s", out)
	}
}

func TestDisplayOrder_SortsByPIDNumber(t *testing.T) {
	procs := []model.Process{
		{ID: "p10", Arrival: 0, Service: 1},
		{ID: "p2", Arrival: 0, Service: 1},
		{ID: "p1", Arrival: 0, Service: 1},
	}
	got := displayOrder(procs)
	want := []string{"p1", "p2", "p10"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("displayOrder[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
	// Input slice untouched.
	if procs[0].ID != "p10" {
		t.Errorf("displayOrder mutated its input: %+v", procs)
	}
}
