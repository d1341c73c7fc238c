package handler

import (
	"log/slog"
	"net/http"

	"callprep/internal/httputil"
	"callprep/internal/service/model"
)

// ModelHandler handles HTTP requests for the session's model resolution
type ModelHandler struct {
	resolver *model.Resolver
	logger   *slog.Logger
}

// NewModelHandler creates a new model handler
func NewModelHandler(resolver *model.Resolver, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// GetModel returns the current model resolution.
// GET /api/model
func (h *ModelHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	descriptor := h.resolver.Resolve(r.Context())
	httputil.RespondJSON(w, http.StatusOK, descriptor)
}

// RefreshModel drops the cached resolution and re-discovers. Used after the
// user changes credentials or the backend's model list has moved on.
// POST /api/model/refresh
func (h *ModelHandler) RefreshModel(w http.ResponseWriter, r *http.Request) {
	h.resolver.Invalidate()
	descriptor := h.resolver.Resolve(r.Context())

	h.logger.Info("model resolution refreshed",
		"model", descriptor.Name,
		"source", descriptor.Source,
	)
	httputil.RespondJSON(w, http.StatusOK, descriptor)
}
