package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobwise/app/analyzer"
	"github.com/umputun/jobwise/app/notify"
	"github.com/umputun/jobwise/app/store"
	"github.com/umputun/jobwise/app/web/mocks"
)

func TestServer_StoreErrors(t *testing.T) {
	js := &mocks.JobStoreMock{
		AddFunc: func(_ context.Context, data store.JobData) (store.Job, error) {
			if data.Company == "bad" {
				return store.Job{}, fmt.Errorf("%w: company is required", store.ErrInvalidJob)
			}
			return store.Job{}, errors.New("boom")
		},
		UpdateFunc:   func(context.Context, store.Job) (bool, error) { return false, errors.New("boom") },
		SnapshotFunc: func() ([]byte, error) { return nil, errors.New("boom") },
	}
	srv, err := New(Config{Store: js, Analyzer: &analyzer.Service{}, Toasts: notify.NewService(notify.Params{})})
	require.NoError(t, err)
	h := srv.routes()

	t.Run("add invalid job", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/api/v1/jobs", jobBody("bad", "applied")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "company is required")
	})

	t.Run("add failed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/api/v1/jobs", jobBody("Acme", "applied")))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"failed to add job"}`, rec.Body.String())
	})

	t.Run("update failed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, jsonRequest(t, http.MethodPut, "/api/v1/jobs/1", jobBody("Acme", "offered")))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Len(t, js.UpdateCalls(), 1)
		assert.Equal(t, int64(1), js.UpdateCalls()[0].Job.ID)
		assert.Equal(t, store.StatusOffered, js.UpdateCalls()[0].Job.Status)
	})

	t.Run("export failed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	assert.Len(t, js.AddCalls(), 2)
}

func TestServer_AnalyzerErrors(t *testing.T) {
	an := &mocks.AnalyzerMock{
		AnalyzeResumeFunc: func(context.Context, analyzer.Document) (analyzer.ResumeFeedback, error) {
			return analyzer.ResumeFeedback{}, errors.New("backend down")
		},
		AnalyzeDescriptionFunc: func(context.Context, string) (analyzer.DescriptionAnalysis, error) {
			return analyzer.DescriptionAnalysis{}, context.DeadlineExceeded
		},
	}
	st, toasts := prepDeps(t)
	srv, err := New(Config{Store: st, Analyzer: an, Toasts: toasts})
	require.NoError(t, err)
	h := srv.routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, resumeRequest(t, "cv.bin", "", []byte("%PDF-1.4 resume")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, an.AnalyzeResumeCalls(), 1)
	doc := an.AnalyzeResumeCalls()[0].Doc
	assert.Equal(t, "cv.bin", doc.Name)
	assert.Equal(t, "application/pdf", doc.ContentType, "content type sniffed")
	assert.Equal(t, int64(len("%PDF-1.4 resume")), doc.Size)
	assert.Equal(t, "Analysis failed, please try again", toasts.Recent()[0].Message)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/api/v1/analyze/description", `{"text":"  Go engineer "}`))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Len(t, an.AnalyzeDescriptionCalls(), 1)
	assert.Equal(t, "Go engineer", an.AnalyzeDescriptionCalls()[0].Text)
}
