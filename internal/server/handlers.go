package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/me/schedsim/internal/parser"
	"github.com/me/schedsim/pkg/model"
)

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Store     string `json:"store"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, healthResponse{
		Status:    "healthy",
		Version:   "0.1.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Store:     "ready",
	})
}

// createRunRequest submits a workload either as raw input text or as a
// structured workload. Exactly one of the two must be set.
type createRunRequest struct {
	Name     string          `json:"name"`
	Input    string          `json:"input,omitempty"`
	Workload *model.Workload `json:"workload,omitempty"`
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid JSON body: "+err.Error()))
		return
	}

	var workload *model.Workload
	switch {
	case req.Input != "" && req.Workload != nil:
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("provide either input or workload, not both"))
		return

	case req.Input != "":
		parsed, err := s.parser.Parse(strings.NewReader(req.Input))
		if err != nil {
			var pe *parser.ParseError
			if errors.As(err, &pe) {
				respondError(w, reqID, http.StatusBadRequest,
					model.NewValidationError("invalid input text",
						model.FieldError{Field: "input", Message: pe.Error()}))
				return
			}
			respondError(w, reqID, http.StatusBadRequest, model.NewValidationError(err.Error()))
			return
		}
		workload = parsed

	case req.Workload != nil:
		if fieldErrs := req.Workload.Validate(); len(fieldErrs) > 0 {
			respondError(w, reqID, http.StatusBadRequest,
				model.NewValidationError("invalid workload", fieldErrs...))
			return
		}
		workload = req.Workload

	default:
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("either input or workload is required"))
		return
	}

	results, err := s.sim.RunAll(*workload)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError(err.Error()))
		return
	}

	run := &model.Run{
		ID:        "run_" + uuid.New().String(),
		Name:      req.Name,
		Workload:  *workload,
		Results:   results,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateRun(r.Context(), run); err != nil {
		s.logger.Error("create run", "run_id", run.ID, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("store run"))
		return
	}

	s.logger.Info("run created", "run_id", run.ID, "processes", len(workload.Processes))
	respondCreated(w, reqID, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	summaries, err := s.store.ListRuns(r.Context())
	if err != nil {
		s.logger.Error("list runs", "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("list runs"))
		return
	}
	respondOK(w, reqID, summaries)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.logger.Error("get run", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("get run"))
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}
	respondOK(w, reqID, run)
}

func (s *Server) handleGetRunResult(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")
	algo := model.Algorithm(chi.URLParam(r, "algorithm"))

	if !algo.Valid() {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("algorithm", string(algo)))
		return
	}

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.logger.Error("get run", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("get run"))
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}

	res, ok := run.Results[algo]
	if !ok {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("result", string(algo)))
		return
	}
	respondOK(w, reqID, res)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.logger.Error("get run", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("get run"))
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}

	if err := s.store.DeleteRun(r.Context(), id); err != nil {
		s.logger.Error("delete run", "run_id", id, "error", err)
		respondError(w, reqID, http.StatusInternalServerError, model.NewInternalError("delete run"))
		return
	}
	respondOK(w, reqID, map[string]string{"id": id, "deleted": "true"})
}
