package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matchtape/stats-api/internal/models"
)

// AppendEvent handles POST /api/v1/clips/{clipID}/events
// A playback-mode edit: the event is appended, then the whole clip is
// re-sorted, re-accumulated, re-derived, and queued for atomic rewrite.
func (h *Handler) AppendEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.AppendEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sc, err := h.clips.AppendEvent(r.Context(), chi.URLParam(r, "clipID"), req.Event)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, sc)
}

// ReplaceEvent handles PUT /api/v1/clips/{clipID}/events/{eventID}
func (h *Handler) ReplaceEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.ReplaceEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sc, err := h.clips.ReplaceEvent(r.Context(),
		chi.URLParam(r, "clipID"), chi.URLParam(r, "eventID"), req.Event)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, sc)
}

// DeleteEvent handles DELETE /api/v1/clips/{clipID}/events/{eventID}
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	sc, err := h.clips.DeleteEvent(r.Context(),
		chi.URLParam(r, "clipID"), chi.URLParam(r, "eventID"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, sc)
}

// ScoreAt handles GET /api/v1/clips/{clipID}/score?t=SECONDS
// Returns the live score at playback position t.
func (h *Handler) ScoreAt(w http.ResponseWriter, r *http.Request) {
	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "query parameter t must be a number")
		return
	}

	score, err := h.clips.ScoreAt(r.Context(), chi.URLParam(r, "clipID"), t)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, models.ScoreAtResponse{T: t, Score: score})
}

// GetHighlight handles GET /api/v1/clips/{clipID}/highlight
func (h *Handler) GetHighlight(w http.ResponseWriter, r *http.Request) {
	hl, err := h.clips.Highlight(r.Context(), chi.URLParam(r, "clipID"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, hl)
}
