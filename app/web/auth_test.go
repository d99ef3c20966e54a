package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestServer_Authentication(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
	require.NoError(t, err)
	srv := prepServer(t, string(hash))
	h := srv.routes()

	t.Run("without auth returns 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("ping is open", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong basic auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.SetBasicAuth("jobwise", "wrongpass")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong basic auth user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.SetBasicAuth("admin", "testpass")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct basic auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.SetBasicAuth("jobwise", "testpass")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("login, use cookie, logout", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, loginRequest("testpass", "192.0.2.10:1234"))
		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, "jobwise-auth", cookie.Name)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.AddCookie(cookie)
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest(http.MethodPost, "/logout", http.NoBody)
		req.AddCookie(cookie)
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, rec.Result().Cookies(), 1)
		assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)

		req = httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.AddCookie(cookie)
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "session dropped by logout")
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, loginRequest("nope", "192.0.2.11:1234"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("login without password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, loginRequest("", "192.0.2.12:1234"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("forged cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "jobwise-auth", Value: "forged"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_LoginRateLimit(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
	require.NoError(t, err)
	h := prepServer(t, string(hash)).routes()

	codes := make([]int, 0, 7)
	for range 7 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, loginRequest("wrong", "192.0.2.20:1234"))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, http.StatusUnauthorized, codes[0])
	assert.Equal(t, http.StatusTooManyRequests, codes[6])
}

func TestServer_SessionExpiry(t *testing.T) {
	srv := prepServer(t, "")
	srv.sessions["old"] = time.Now().Add(-time.Minute)
	srv.sessions["fresh"] = time.Now().Add(time.Minute)

	assert.False(t, srv.validSession("old"))
	assert.True(t, srv.validSession("fresh"))
	assert.False(t, srv.validSession("unknown"))
	_, ok := srv.sessions["old"]
	assert.False(t, ok, "expired session removed")

	srv.sessions["stale"] = time.Now().Add(-time.Second)
	srv.sessionsMu.Lock()
	srv.cleanupSessions()
	srv.sessionsMu.Unlock()
	assert.Len(t, srv.sessions, 1)
}

func loginRequest(password, remoteAddr string) *http.Request {
	form := url.Values{}
	if password != "" {
		form.Set("password", password)
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = remoteAddr
	return req
}
