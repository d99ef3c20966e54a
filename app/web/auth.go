package web

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	log "github.com/go-pkgz/lgr"
)

const (
	authCookie    = "jobwise-auth"
	basicAuthUser = "jobwise"
)

// newLoginLimiter allows 5 login attempts per minute per client address
func newLoginLimiter() *limiter.Limiter {
	lmt := tollbooth.NewLimiter(5.0/60, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetBurst(5)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
	lmt.SetMessage(`{"error":"too many login attempts"}`)
	lmt.SetMessageContentType("application/json")
	return lmt
}

// handleLogin checks password from the form and sets session cookie
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	password := r.FormValue("password")
	if password == "" {
		s.writeJSONError(w, http.StatusBadRequest, "password is required")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		log.Printf("[WARN] failed login attempt from %s", r.RemoteAddr)
		s.writeJSONError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token := uuid.NewString()
	s.sessionsMu.Lock()
	s.cleanupSessions()
	s.sessions[token] = time.Now().Add(s.loginTTL)
	s.sessionsMu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.loginTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
	})
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLogout drops the session and clears the auth cookie
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(authCookie); err == nil {
		s.sessionsMu.Lock()
		delete(s.sessions, cookie.Value)
		s.sessionsMu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // delete cookie
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
	})
	w.WriteHeader(http.StatusNoContent)
}

// authMiddleware checks for session cookie or falls back to basic auth
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			next.ServeHTTP(w, r)
			return
		}

		if cookie, err := r.Cookie(authCookie); err == nil && s.validSession(cookie.Value) {
			next.ServeHTTP(w, r)
			return
		}

		// fallback to basic auth for API clients
		username, password, ok := r.BasicAuth()
		if ok && username == basicAuthUser {
			if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err == nil {
				next.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="jobwise"`)
		s.writeJSONError(w, http.StatusUnauthorized, "unauthorized")
	})
}

// validSession checks session token exists and not expired
func (s *Server) validSession(token string) bool {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	exp, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// cleanupSessions removes expired sessions, must be called under sessionsMu
func (s *Server) cleanupSessions() {
	now := time.Now()
	for token, exp := range s.sessions {
		if now.After(exp) {
			delete(s.sessions, token)
		}
	}
}
