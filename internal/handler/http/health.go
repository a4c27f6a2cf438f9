package http

import (
	"context"
	"log/slog"
	"net/http"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Live(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db Pinger
}

func NewHealthHandler(db Pinger) HealthHandler {
	return &healthHandlerImpl{db: db}
}

// Live handles GET /healthz
func (h *healthHandlerImpl) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready handles GET /readyz
func (h *healthHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Warn("readiness check failed", "error", err)
		http.Error(w, "db not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
