package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobwise/app/analyzer"
)

// handleAnalyzeResume accepts multipart upload with "resume" field and returns feedback
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	key := analysisKey("resume", r)
	if !s.analyses.add(key) {
		s.writeJSONError(w, http.StatusConflict, "resume analysis already in progress")
		return
	}
	defer s.analyses.remove(key)

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.toasts.Error("Failed to upload resume")
		s.writeJSONError(w, http.StatusBadRequest, "invalid upload, multipart form with resume file expected")
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		s.toasts.Error("Please choose a resume file")
		s.writeJSONError(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	if header.Size > maxResumeSize {
		s.toasts.Error("Resume is too large")
		s.writeJSONError(w, http.StatusRequestEntityTooLarge, "resume is too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		// sniff from the first 512 bytes, same as http.DetectContentType reads
		buf := make([]byte, 512)
		n, rerr := io.ReadFull(file, buf)
		if rerr != nil && !errors.Is(rerr, io.ErrUnexpectedEOF) && !errors.Is(rerr, io.EOF) {
			s.writeJSONError(w, http.StatusBadRequest, "failed to read resume")
			return
		}
		contentType = http.DetectContentType(buf[:n])
	}

	doc := analyzer.Document{Name: header.Filename, ContentType: contentType, Size: header.Size}
	feedback, err := s.analyzer.AnalyzeResume(r.Context(), doc)
	if err != nil {
		s.analyzeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, feedback)
}

// handleAnalyzeDescription accepts {"text": "..."} and returns description analysis
func (s *Server) handleAnalyzeDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	key := analysisKey("description", r)
	if !s.analyses.add(key) {
		s.writeJSONError(w, http.StatusConflict, "description analysis already in progress")
		return
	}
	defer s.analyses.remove(key)

	res, err := s.analyzer.AnalyzeDescription(r.Context(), strings.TrimSpace(req.Text))
	if err != nil {
		s.analyzeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// analyzeError maps analyzer errors to responses and error toasts
func (s *Server) analyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzer.ErrUnsupportedDocument):
		s.toasts.Error("Please upload a PDF or Word document")
		s.writeJSONError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, analyzer.ErrEmptyDescription):
		s.toasts.Error("Please paste a job description")
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("[DEBUG] analysis interrupted: %v", err)
		s.writeJSONError(w, http.StatusServiceUnavailable, "analysis interrupted")
	default:
		log.Printf("[WARN] analysis failed: %v", err)
		s.toasts.Error("Analysis failed, please try again")
		s.writeJSONError(w, http.StatusInternalServerError, "analysis failed")
	}
}
