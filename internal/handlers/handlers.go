package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/matchtape/stats-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	Queue  logic.PersistQueue
	Logger *zap.Logger
	// Services
	Clips logic.ClipService
	Stats logic.StatsService
}

type Handler struct {
	queue     logic.PersistQueue
	logger    *zap.SugaredLogger
	validator *validator.Validate
	clips     logic.ClipService
	stats     logic.StatsService
}

func New(cfg Config) *Handler {
	return &Handler{
		queue:     cfg.Queue,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
		clips:     cfg.Clips,
		stats:     cfg.Stats,
	}
}

// Routes mounts the API surface on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/clips", h.CreateClip)
		r.Get("/clips", h.ListClips)
		r.Route("/clips/{clipID}", func(r chi.Router) {
			r.Get("/", h.GetClip)
			r.Get("/score", h.ScoreAt)
			r.Get("/highlight", h.GetHighlight)
			r.Post("/events", h.AppendEvent)
			r.Put("/events/{eventID}", h.ReplaceEvent)
			r.Delete("/events/{eventID}", h.DeleteEvent)
		})
		r.Get("/athletes/{athlete}/summary", h.AthleteSummary)
	})
}
