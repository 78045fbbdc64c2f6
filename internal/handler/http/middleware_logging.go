package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/quyetcv1/coffee-shop/internal/logger"
)

// withLogging writes one access log entry per request once the response is
// complete. Client errors are logged at Warn and server errors at Error.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			// nothing was written; net/http answers 200
			status = http.StatusOK
		}

		event := accessLogEvent(logger.FromRequest(r), status).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", rw.size).
			Dur("elapsed", time.Since(start))

		// chi fills the pattern while routing, so it is read afterwards
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			event = event.Str("route", rctx.RoutePattern())
		}
		if origin := r.Header.Get("Origin"); origin != "" {
			event = event.Str("origin", origin)
		}

		event.Msg("request handled")
	})
}

func accessLogEvent(l *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return l.Error()
	case status >= http.StatusBadRequest:
		return l.Warn()
	default:
		return l.Info()
	}
}
