package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchtape/stats-api/internal/models"
)

// CreateClip handles POST /api/v1/clips
// Called when a recording finishes: the body carries clip metadata and the
// raw event stream accumulated during capture. The response is the fully
// derived sidecar payload.
func (h *Handler) CreateClip(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.CreateClipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "athlete and sport are required")
		return
	}

	sc, err := h.clips.CreateClip(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusCreated, sc)
}

// ListClips handles GET /api/v1/clips?athlete=NAME
func (h *Handler) ListClips(w http.ResponseWriter, r *http.Request) {
	clips, err := h.clips.ListClips(r.Context(), r.URL.Query().Get("athlete"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if clips == nil {
		clips = []models.Sidecar{}
	}
	h.jsonResponse(w, http.StatusOK, clips)
}

// GetClip handles GET /api/v1/clips/{clipID}
// Derived fields are recomputed from events on read; cached values on disk
// are never served as ground truth.
func (h *Handler) GetClip(w http.ResponseWriter, r *http.Request) {
	sc, err := h.clips.GetClip(r.Context(), chi.URLParam(r, "clipID"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, sc)
}
