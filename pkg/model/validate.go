package model

import "fmt"

// Validate checks a programmatically built workload against the simulator's
// input contract: nonnegative dispatch cost, well-formed unique PIDs,
// nonnegative arrivals, positive service times, and arrivals sorted
// non-decreasing. Returns one FieldError per violation.
//
// Workloads produced by the text parser are already validated; this exists
// for workloads submitted as structured data (the HTTP API).
func (w Workload) Validate() []FieldError {
	var errs []FieldError

	if w.DispatchCost < 0 {
		errs = append(errs, FieldError{
			Field:   "dispatch_cost",
			Message: fmt.Sprintf("must be >= 0, got %d", w.DispatchCost),
		})
	}
	if len(w.Processes) == 0 {
		errs = append(errs, FieldError{Field: "processes", Message: "at least one process required"})
	}

	seen := make(map[string]bool, len(w.Processes))
	for i, p := range w.Processes {
		field := fmt.Sprintf("processes[%d]", i)
		if _, err := PIDNumber(p.ID); err != nil {
			errs = append(errs, FieldError{Field: field + ".id", Message: err.Error()})
		} else if seen[p.ID] {
			errs = append(errs, FieldError{Field: field + ".id", Message: fmt.Sprintf("duplicate PID %s", p.ID)})
		}
		seen[p.ID] = true

		if p.Arrival < 0 {
			errs = append(errs, FieldError{
				Field:   field + ".arrival",
				Message: fmt.Sprintf("must be >= 0, got %d", p.Arrival),
			})
		}
		if p.Service <= 0 {
			errs = append(errs, FieldError{
				Field:   field + ".service",
				Message: fmt.Sprintf("must be > 0, got %d", p.Service),
			})
		}
		if i > 0 && p.Arrival < w.Processes[i-1].Arrival {
			errs = append(errs, FieldError{
				Field:   field + ".arrival",
				Message: "arrival times must be non-decreasing",
			})
		}
	}
	return errs
}
