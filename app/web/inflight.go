package web

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// inflight keeps running analysis requests to prevent double submission from the same client
type inflight struct {
	active map[string]time.Time
	lock   sync.Mutex
}

func newInflight() *inflight {
	return &inflight{active: make(map[string]time.Time)}
}

// add registers key, fails if already in
func (f *inflight) add(key string) bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	if _, found := f.active[key]; found {
		return false
	}
	f.active[key] = time.Now()
	return true
}

// remove key. Safe to call multiple times
func (f *inflight) remove(key string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	delete(f.active, key)
}

// analysisKey makes inflight key from analysis kind and client address
func analysisKey(kind string, r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return kind + ":" + host
}
