// Package web implements HTTP JSON API of jobwise
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/go-playground/validator/v10"

	"github.com/umputun/jobwise/app/analyzer"
	"github.com/umputun/jobwise/app/notify"
	"github.com/umputun/jobwise/app/store"
)

const (
	maxJSONBody   = 64 * 1024
	maxResumeSize = 5 * 1024 * 1024
)

// Server represents the web server
type Server struct {
	store          JobStore
	analyzer       Analyzer
	toasts         Toasts
	version        string
	passwordHash   string                      // bcrypt hash for auth, empty to disable
	loginTTL       time.Duration               // session TTL
	csrfProtection *http.CrossOriginProtection // csrf protection for POST endpoints
	loginLimiter   *limiter.Limiter
	validate       *validator.Validate
	metrics        *metrics
	analyses       *inflight
	sessions       map[string]time.Time // session token -> expiration
	sessionsMu     sync.Mutex
}

//go:generate moq -out mocks/job_store.go -pkg mocks -skip-ensure -fmt goimports . JobStore
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer

// JobStore is the job collection used by handlers
type JobStore interface {
	Add(ctx context.Context, data store.JobData) (store.Job, error)
	Update(ctx context.Context, job store.Job) (bool, error)
	Delete(ctx context.Context, id int64) bool
	ByStatus(status store.Status) []store.Job
	List() []store.Job
	Get(id int64) (store.Job, bool)
	Stats() store.Stats
	Snapshot() ([]byte, error)
}

// Analyzer makes resume and job description reports
type Analyzer interface {
	AnalyzeResume(ctx context.Context, doc analyzer.Document) (analyzer.ResumeFeedback, error)
	AnalyzeDescription(ctx context.Context, text string) (analyzer.DescriptionAnalysis, error)
}

// Toasts keeps user-facing notifications
type Toasts interface {
	Recent() []notify.Toast
	Error(msg string)
}

// Config holds server configuration
type Config struct {
	Store        JobStore
	Analyzer     Analyzer
	Toasts       Toasts
	Version      string
	PasswordHash string        // bcrypt hash for auth (empty to disable)
	LoginTTL     time.Duration // session TTL, defaults to 24h if not set
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("web server initialization failed: store is required")
	}
	if cfg.Analyzer == nil {
		return nil, fmt.Errorf("web server initialization failed: analyzer is required")
	}
	if cfg.Toasts == nil {
		return nil, fmt.Errorf("web server initialization failed: toasts are required")
	}

	loginTTL := cfg.LoginTTL
	if loginTTL == 0 {
		loginTTL = 24 * time.Hour
	}

	return &Server{
		store:          cfg.Store,
		analyzer:       cfg.Analyzer,
		toasts:         cfg.Toasts,
		version:        cfg.Version,
		passwordHash:   cfg.PasswordHash,
		loginTTL:       loginTTL,
		csrfProtection: http.NewCrossOriginProtection(),
		loginLimiter:   newLoginLimiter(),
		validate:       validator.New(),
		metrics:        newMetrics(cfg.Store),
		analyses:       newInflight(),
		sessions:       make(map[string]time.Time),
	}, nil
}

// Run starts the web server, blocks until ctx canceled
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // analysis calls wait for the analyzer
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware - applied to all routes
	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("jobwise", "umputun", s.version),
		rest.Ping,
		rest.Trace,
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
		s.metrics.middleware,
	)

	// auth middleware must be set before any routes are defined, it skips /login itself
	if s.passwordHash != "" {
		log.Printf("[INFO] authentication enabled for api")
		router.Use(s.authMiddleware)
		router.With(s.csrfProtection.Handler, rest.SizeLimit(maxJSONBody), tollbooth.HTTPMiddleware(s.loginLimiter)).
			HandleFunc("POST /login", s.handleLogin)
		router.With(s.csrfProtection.Handler).HandleFunc("POST /logout", s.handleLogout)
	}

	router.Handle("GET /metrics", s.metrics.handler())

	router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		api.Use(s.csrfProtection.Handler) // CSRF protection for POST endpoints

		api.With(rest.SizeLimit(maxJSONBody)).Route(func(jsonAPI *routegroup.Bundle) {
			jsonAPI.HandleFunc("GET /jobs", s.handleListJobs)
			jsonAPI.HandleFunc("GET /jobs/{id}", s.handleGetJob)
			jsonAPI.HandleFunc("POST /jobs", s.handleAddJob)
			jsonAPI.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
			jsonAPI.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)
			jsonAPI.HandleFunc("GET /stats", s.handleStats)
			jsonAPI.HandleFunc("GET /export", s.handleExport)
			jsonAPI.HandleFunc("GET /schema", s.handleSchema)
			jsonAPI.HandleFunc("GET /toasts", s.handleToasts)
			jsonAPI.HandleFunc("POST /analyze/description", s.handleAnalyzeDescription)
		})
		api.With(rest.SizeLimit(maxResumeSize+64*1024)).HandleFunc("POST /analyze/resume", s.handleAnalyzeResume)
	})

	return router
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
