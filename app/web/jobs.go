package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-playground/validator/v10"

	"github.com/umputun/jobwise/app/store"
)

// jobRequest is the body of create and update calls
type jobRequest struct {
	Company     string `json:"company" validate:"required,max=200"`
	Role        string `json:"role" validate:"required,max=200"`
	Pay         string `json:"pay" validate:"max=100"`
	DateApplied string `json:"dateApplied" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status" validate:"required,oneof=applied interview offered rejected"`
	Notes       string `json:"notes" validate:"max=5000"`
}

// handleListJobs returns all jobs or jobs with status from ?status query
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		s.writeJSON(w, http.StatusOK, s.store.List())
		return
	}
	status, err := store.ParseStatus(strings.TrimSpace(raw))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.store.ByStatus(status))
}

// handleGetJob returns a single job
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}
	job, found := s.store.Get(id)
	if !found {
		s.writeJSONError(w, http.StatusNotFound, fmt.Sprintf("job %d not found", id))
		return
	}
	s.writeJSON(w, http.StatusOK, job)
}

// handleAddJob creates a job, responds with the stored job including its new id
func (s *Server) handleAddJob(w http.ResponseWriter, r *http.Request) {
	data, ok := s.decodeJob(w, r)
	if !ok {
		return
	}
	job, err := s.store.Add(r.Context(), data)
	if err != nil {
		s.storeError(w, "add", err)
		return
	}
	s.metrics.mutation("add")
	s.writeJSON(w, http.StatusCreated, job)
}

// handleUpdateJob replaces a job with the given id
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}
	data, ok := s.decodeJob(w, r)
	if !ok {
		return
	}
	job := store.Job{ID: id, JobData: data}
	found, err := s.store.Update(r.Context(), job)
	if err != nil {
		s.storeError(w, "update", err)
		return
	}
	if !found {
		s.writeJSONError(w, http.StatusNotFound, fmt.Sprintf("job %d not found", id))
		return
	}
	s.metrics.mutation("update")
	s.writeJSON(w, http.StatusOK, job)
}

// handleDeleteJob removes a job with the given id
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}
	if !s.store.Delete(r.Context(), id) {
		s.writeJSONError(w, http.StatusNotFound, fmt.Sprintf("job %d not found", id))
		return
	}
	s.metrics.mutation("delete")
	w.WriteHeader(http.StatusNoContent)
}

// jobID extracts the id path value, writes 400 on failure
func (s *Server) jobID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid job id")
		return 0, false
	}
	return id, true
}

// decodeJob reads and validates job request body, writes 400 on failure
func (s *Server) decodeJob(w http.ResponseWriter, r *http.Request) (store.JobData, bool) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return store.JobData{}, false
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	req.DateApplied = strings.TrimSpace(req.DateApplied)
	if err := s.validate.Struct(req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, validationMessage(err))
		return store.JobData{}, false
	}
	status, err := store.ParseStatus(req.Status)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return store.JobData{}, false
	}
	return store.JobData{
		Company:     strings.TrimSpace(req.Company),
		Role:        strings.TrimSpace(req.Role),
		Pay:         strings.TrimSpace(req.Pay),
		DateApplied: req.DateApplied,
		Status:      status,
		Notes:       req.Notes,
	}, true
}

// storeError maps store errors to responses
func (s *Server) storeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrInvalidJob) {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("[WARN] failed to %s job: %v", op, err)
	s.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to %s job", op))
}

// validationMessage makes a short message from validator errors, like "company is required"
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", field, fe.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a date like %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s is longer than %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s check", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}
