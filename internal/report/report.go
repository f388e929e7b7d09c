// Package report renders simulation results for the console: per-algorithm
// dispatch timelines and metric tables, plus a cross-algorithm summary.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/me/schedsim/pkg/model"
)

// Writer renders runs to an io.Writer.
type Writer struct {
	out io.Writer
}

// NewWriter creates a report writer targeting out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteRun renders every algorithm's section in canonical order followed by
// the summary table.
func (w *Writer) WriteRun(run *model.Run) {
	procs := displayOrder(run.Workload.Processes)
	for _, algo := range model.Algorithms() {
		res, ok := run.Results[algo]
		if !ok {
			continue
		}
		w.WriteResult(run.Workload, res, procs)
		fmt.Fprintln(w.out)
	}
	w.writeSummary(run)
}

// WriteResult renders one algorithm's timeline and metrics table. procs
// controls row order; pass nil to use display order (ascending PID number).
func (w *Writer) WriteResult(workload model.Workload, res model.RunResult, procs []model.Process) {
	if procs == nil {
		procs = displayOrder(workload.Processes)
	}

	fmt.Fprintf(w.out, "%s:\n", res.Algorithm.Label())
	for _, s := range res.Timeline {
		fmt.Fprintf(w.out, "T%d: %s\n", s.Start, s.PID)
	}
	fmt.Fprintln(w.out)

	table := tablewriter.NewWriter(w.out)
	table.SetHeader([]string{"Process", "Arrival", "Service", "Completion", "Turnaround", "Waiting"})
	for _, p := range procs {
		pm := res.Metrics.PerProcess[p.ID]
		table.Append([]string{
			p.ID,
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Service),
			strconv.Itoa(pm.Completion),
			strconv.Itoa(pm.Turnaround),
			strconv.Itoa(pm.Waiting),
		})
	}
	table.SetFooter([]string{"", "", "", "Average",
		fmt.Sprintf("%.2f", res.Metrics.MeanTurnaround),
		fmt.Sprintf("%.2f", res.Metrics.MeanWaiting)})
	table.Render()
}

// writeSummary renders the average turnaround and waiting time of every
// algorithm side by side.
func (w *Writer) writeSummary(run *model.Run) {
	fmt.Fprintln(w.out, "Summary")
	table := tablewriter.NewWriter(w.out)
	table.SetHeader([]string{"Algorithm", "Average Turnaround Time", "Average Waiting Time"})
	for _, algo := range model.Algorithms() {
		res, ok := run.Results[algo]
		if !ok {
			continue
		}
		table.Append([]string{
			algo.Label(),
			fmt.Sprintf("%.2f", res.Metrics.MeanTurnaround),
			fmt.Sprintf("%.2f", res.Metrics.MeanWaiting),
		})
	}
	table.Render()
}

// displayOrder sorts processes by the numeric part of their PID. IDs that
// fail to parse (which the parser rejects anyway) sort last by raw ID.
func displayOrder(procs []model.Process) []model.Process {
	out := make([]model.Process, len(procs))
	copy(out, procs)
	sort.SliceStable(out, func(i, j int) bool {
		ni, erri := model.PIDNumber(out[i].ID)
		nj, errj := model.PIDNumber(out[j].ID)
		if erri != nil || errj != nil {
			return out[i].ID < out[j].ID
		}
		return ni < nj
	})
	return out
}
