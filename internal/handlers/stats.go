package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AthleteSummary handles GET /api/v1/athletes/{athlete}/summary
// Fans in every clip recorded for the athlete, grouped by sport key.
func (h *Handler) AthleteSummary(w http.ResponseWriter, r *http.Request) {
	athlete := chi.URLParam(r, "athlete")
	if athlete == "" {
		h.errorResponse(w, http.StatusBadRequest, "athlete is required")
		return
	}

	summary, err := h.stats.AthleteSummary(r.Context(), athlete)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, summary)
}
