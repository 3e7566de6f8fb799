package handler

import (
	"context"
	"net/http"

	"github.com/iho/dwh/internal/adapter/http/dto"
	"github.com/iho/dwh/internal/usecase"
)

// SyncService defines the behavior needed by SyncHandler.
type SyncService interface {
	Run(ctx context.Context) (*usecase.RunReport, error)
}

// SyncHandler triggers sync runs on demand.
type SyncHandler struct {
	sync SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(sync SyncService) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// Trigger runs one sync and reports the outcome.
func (h *SyncHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	report, err := h.sync.Run(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sync failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SyncFromReport(report))
}
