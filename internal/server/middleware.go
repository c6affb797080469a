package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Logging returns [Middleware] that logs method, path, status and duration
// for every request.
func Logging(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// AdminOnly returns [Middleware] that rejects requests missing the
// organizer token. The token is accepted from the X-Admin-Token header or
// a token query parameter.
func AdminOnly(token string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, "Admin endpoints are disabled", http.StatusForbidden)
				return
			}

			got := r.Header.Get("X-Admin-Token")
			if got == "" {
				got = r.URL.Query().Get("token")
			}
			if got != token {
				http.Error(w, "Invalid admin token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
