package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access line per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		// the route pattern keeps verification tokens out of the log
		uri := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			uri = rctx.RoutePattern()
		}

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
