package handler

import (
	"log/slog"
	"net/http"

	"callprep/internal/httputil"
	"callprep/internal/service"
)

// BriefingHandler handles HTTP requests for briefing generation
type BriefingHandler struct {
	briefings *service.BriefingService
	logger    *slog.Logger
}

// NewBriefingHandler creates a new briefing handler
func NewBriefingHandler(briefings *service.BriefingService, logger *slog.Logger) *BriefingHandler {
	return &BriefingHandler{
		briefings: briefings,
		logger:    logger,
	}
}

// Generate runs one generate action and returns the briefing text.
// POST /api/briefings
func (h *BriefingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateBriefingRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	briefing, err := h.briefings.Generate(r.Context(), &req)
	if err != nil {
		h.logger.Warn("briefing generation failed",
			"variant", req.Variant,
			"user_id", httputil.GetUserID(r),
			"request_id", httputil.GetRequestID(r),
			"error", err.Error(),
		)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, briefing)
}

// Preview assembles the request payload for inspection without calling the
// backend, so the user can copy the prompt elsewhere or sanity-check it
// before spending a generation call.
// POST /api/briefings/preview
func (h *BriefingHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateBriefingRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := h.briefings.Preview(r.Context(), &req)
	if err != nil {
		h.logger.Warn("briefing preview failed",
			"variant", req.Variant,
			"user_id", httputil.GetUserID(r),
			"request_id", httputil.GetRequestID(r),
			"error", err.Error(),
		)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, preview)
}
