package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/dwh/internal/adapter/http/dto"
)

// Pinger reports whether primary storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	primary Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(primary Pinger) *HealthHandler {
	return &HealthHandler{primary: primary}
}

// Health reports whether the service can reach primary storage.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.primary.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Healthy: false})
		return
	}

	writeJSON(w, http.StatusOK, dto.HealthResponse{Healthy: true})
}
