package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/umputun/jobwise/app/store"
)

func TestServer_Stats(t *testing.T) {
	srv := prepServer(t, "")
	h := srv.routes()
	for _, status := range []string{"applied", "interview", "offered", "applied"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/api/v1/jobs", jobBody("Acme", status)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats store.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[store.StatusApplied])
	assert.Equal(t, 1, stats.ByStatus[store.StatusOffered])
	assert.Equal(t, []store.MonthCount{{Month: "2024-03", Count: 4}}, stats.Monthly)
}

func TestServer_Export(t *testing.T) {
	srv := prepServer(t, "")
	h := srv.routes()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/api/v1/jobs", jobBody("Acme", "offered")))
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("json by default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), `.json"`)
		jobs, err := store.Decode(rec.Body.Bytes())
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0].Company)
	})

	t.Run("yaml", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export?format=yaml", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), `.yaml"`)
		var jobs []map[string]any
		require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &jobs))
		require.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0]["company"])
		assert.Equal(t, "offered", jobs[0]["status"])
	})

	t.Run("unsupported format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export?format=csv", http.NoBody))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Schema(t *testing.T) {
	srv := prepServer(t, "")
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schema", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/schema+json", rec.Header().Get("Content-Type"))
	var schema map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schema))
	assert.Equal(t, "array", schema["type"])
	assert.Equal(t, "jobwise snapshot", schema["title"])
}
