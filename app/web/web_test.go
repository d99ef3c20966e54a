package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobwise/app/analyzer"
	"github.com/umputun/jobwise/app/notify"
	"github.com/umputun/jobwise/app/store"
	"github.com/umputun/jobwise/app/store/slot"
)

func TestNew(t *testing.T) {
	st, toasts := prepDeps(t)

	t.Run("valid config", func(t *testing.T) {
		srv, err := New(Config{Store: st, Analyzer: &analyzer.Service{}, Toasts: toasts, Version: "test"})
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, srv.loginTTL)
	})

	t.Run("custom login ttl", func(t *testing.T) {
		srv, err := New(Config{Store: st, Analyzer: &analyzer.Service{}, Toasts: toasts, LoginTTL: time.Hour})
		require.NoError(t, err)
		assert.Equal(t, time.Hour, srv.loginTTL)
	})

	t.Run("missing parts", func(t *testing.T) {
		_, err := New(Config{Analyzer: &analyzer.Service{}, Toasts: toasts})
		require.ErrorContains(t, err, "store is required")
		_, err = New(Config{Store: st, Toasts: toasts})
		require.ErrorContains(t, err, "analyzer is required")
		_, err = New(Config{Store: st, Analyzer: &analyzer.Service{}})
		require.ErrorContains(t, err, "toasts are required")
	})
}

func TestServer_Ping(t *testing.T) {
	srv := prepServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.Equal(t, "jobwise", rec.Header().Get("App-Name"))
}

func TestServer_Run(t *testing.T) {
	srv := prepServer(t, "")
	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:18723") }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18723/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server didn't stop")
	}
}

func TestServer_Metrics(t *testing.T) {
	srv := prepServer(t, "")
	h := srv.routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/api/v1/jobs", jobBody("Acme", "interview")))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `jobwise_jobs{status="interview"} 1`)
	assert.Contains(t, body, `jobwise_jobs{status="applied"} 0`)
	assert.Contains(t, body, `jobwise_job_mutations_total{op="add"} 1`)
	assert.Contains(t, body, `jobwise_http_requests_total{code="201",method="POST"} 1`)
}

func TestServer_Toasts(t *testing.T) {
	srv := prepServer(t, "")
	h := srv.routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/toasts", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/api/v1/jobs", jobBody("Acme", "applied")))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/toasts", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	var toasts []notify.Toast
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toasts))
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.LevelSuccess, toasts[0].Level)
	assert.Equal(t, "Job added successfully!", toasts[0].Message)
}

func prepDeps(t *testing.T) (*store.Store, *notify.Service) {
	t.Helper()
	toasts := notify.NewService(notify.Params{})
	st := store.New(store.Params{Slot: slot.NewMemory(nil), Notifier: toasts})
	require.NoError(t, st.Load(t.Context()))
	return st, toasts
}

func prepServer(t *testing.T, passwordHash string) *Server {
	t.Helper()
	st, toasts := prepDeps(t)
	srv, err := New(Config{Store: st, Analyzer: &analyzer.Service{}, Toasts: toasts, Version: "test",
		PasswordHash: passwordHash})
	require.NoError(t, err)
	return srv
}

func jsonRequest(t *testing.T, method, url, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func jobBody(company, status string) string {
	res, _ := json.Marshal(map[string]string{"company": company, "role": "Engineer", "pay": "$100k",
		"dateApplied": "2024-03-01", "status": status, "notes": "referral"})
	return string(res)
}
