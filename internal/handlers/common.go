package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/matchtape/stats-api/internal/logic"
	"github.com/matchtape/stats-api/internal/store"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":      true,
		"queueDepth": h.queue.QueueDepth(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps store/logic errors onto HTTP statuses.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, "clip not found")
	case errors.Is(err, logic.ErrEventNotFound):
		h.errorResponse(w, http.StatusNotFound, "event not found")
	default:
		h.logger.Errorw("request failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
