package handlers

import (
	"construction-estimator-service/internal/platform/obs"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HealthHandler reports liveness and, when Ping is set, database reachability.
type HealthHandler struct {
	Ping func(ctx context.Context) error
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.Ping(ctx); err != nil {
			zap.S().Named("http").Warnw("health check failed", "req_id", obs.RequestID(r.Context()), "error", err)
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
