package web

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobwise/app/store"
)

// handleStats returns counts and rates over all jobs
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Stats())
}

// handleExport returns all jobs as a downloadable json (default) or yaml file
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	var data []byte
	var err error
	contentType := "application/json"
	switch format {
	case "json":
		data, err = s.store.Snapshot()
	case "yaml":
		contentType = "application/yaml"
		data, err = store.EncodeYAML(s.store.List())
	default:
		s.writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q, json or yaml expected", format))
		return
	}
	if err != nil {
		log.Printf("[WARN] failed to export jobs as %s: %v", format, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to export jobs")
		return
	}

	fname := fmt.Sprintf("jobwise-%s.%s", time.Now().Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fname))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[WARN] failed to write export: %v", err)
	}
}

// handleSchema returns JSON schema of the stored snapshot
func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	schema, err := store.Schema()
	if err != nil {
		log.Printf("[WARN] failed to make schema: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to make schema")
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(schema); err != nil {
		log.Printf("[WARN] failed to write schema: %v", err)
	}
}

// handleToasts returns recent toasts, newest first
func (s *Server) handleToasts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.toasts.Recent())
}
