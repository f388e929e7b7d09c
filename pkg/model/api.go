package model

import "time"

// Response is the standard API envelope.
type Response struct {
	Status    string    `json:"status"` // "ok" or "error"
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
}

// RunSummary is the list-view projection of a persisted Run.
type RunSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ProcessCount int       `json:"process_count"`
	DispatchCost int       `json:"dispatch_cost"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summarize projects a Run onto its list view.
func (r *Run) Summarize() RunSummary {
	return RunSummary{
		ID:           r.ID,
		Name:         r.Name,
		ProcessCount: len(r.Workload.Processes),
		DispatchCost: r.Workload.DispatchCost,
		CreatedAt:    r.CreatedAt,
	}
}
