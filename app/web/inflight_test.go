package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInflight(t *testing.T) {
	f := newInflight()
	assert.True(t, f.add("k1"))
	assert.False(t, f.add("k1"))
	assert.True(t, f.add("k2"))
	f.remove("k1")
	f.remove("k1")
	assert.True(t, f.add("k1"))
}

func TestAnalysisKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "resume:10.0.0.1", analysisKey("resume", req))
	req.RemoteAddr = "10.0.0.2"
	assert.Equal(t, "resume:10.0.0.2", analysisKey("resume", req))
}
