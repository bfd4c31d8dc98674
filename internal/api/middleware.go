package api

import (
	"construction-estimator-service/internal/platform/obs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// requestIDMiddleware reuses the caller's X-Request-Id or assigns a new one,
// stores it in the context for obs.Time and echoes it on the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = obs.NewRequestID()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(obs.WithRequestID(r.Context(), id)))
	})
}

// loggingMiddleware logs end-to-end request duration and response size.
// Level follows the status class.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := []any{
			"req_id", obs.RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", status,
			"bytes", ww.BytesWritten(),
			"dur", time.Since(start),
		}

		logger := zap.S().Named("http")
		switch {
		case status >= 500:
			logger.Errorw("request completed", fields...)
		case status >= 400:
			logger.Warnw("request completed", fields...)
		default:
			logger.Infow("request completed", fields...)
		}
	})
}
