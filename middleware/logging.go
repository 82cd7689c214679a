package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stakex/StakeX/config"
)

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{w, http.StatusOK}
}

func (rr *responseRecorder) WriteHeader(statusCode int) {
	rr.statusCode = statusCode
	rr.ResponseWriter.WriteHeader(statusCode)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rr := newResponseRecorder(w)
		next.ServeHTTP(rr, r)

		config.Logger.Info(fmt.Sprintf("%s %s %d %s", r.Method, r.URL.Path, rr.statusCode, time.Since(start)))
	})
}
