package web

import (
	"context"
	"log/slog"
	"net/http"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type statusResponse struct {
	Status string `json:"status"`
}

// Live answers liveness probes.
func Live(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, logger, http.StatusOK, statusResponse{Status: "ok"})
	}
}

// Ready answers readiness probes, 503 while the pinger fails.
func Ready(logger *slog.Logger, pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.Ping(r.Context()); err != nil {
			logger.WarnContext(r.Context(), "Readiness check failed", "error", err)
			RespondJSON(w, logger, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
			return
		}
		RespondJSON(w, logger, http.StatusOK, statusResponse{Status: "ok"})
	}
}
