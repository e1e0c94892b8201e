package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matchtape/stats-api/internal/models"
)

// ErrEventNotFound is returned when an edit targets an event ID that does
// not exist in the clip.
var ErrEventNotFound = errors.New("event not found")

type clipService struct {
	store  ClipStore
	queue  PersistQueue
	logger *zap.SugaredLogger
}

func NewClipService(store ClipStore, queue PersistQueue, logger *zap.Logger) ClipService {
	return &clipService{
		store:  store,
		queue:  queue,
		logger: logger.Sugar(),
	}
}

// CreateClip seeds a sidecar from a finished recording, runs the full
// derivation pass, and queues the atomic persist. The returned payload is
// complete and self-consistent regardless of when the write lands.
func (s *clipService) CreateClip(ctx context.Context, req *models.CreateClipRequest) (*models.Sidecar, error) {
	sc := &models.Sidecar{
		ID:               uuid.NewString(),
		Athlete:          req.Athlete,
		Sport:            req.Sport,
		Style:            req.Style,
		CreatedAt:        time.Now().UTC(),
		Events:           req.Events,
		HomeIsAthlete:    req.HomeIsAthlete,
		HomeColorIsGreen: req.HomeColorIsGreen,
		AppVersion:       req.AppVersion,
	}

	out := Derive(sc)
	s.logger.Infow("clip created",
		"clip", sc.ID,
		"athlete", sc.Athlete,
		"sportKey", SportKeyFromSidecar(sc),
		"events", len(sc.Events),
		"outcome", out.Result,
		"endedBy", out.EndedBy,
	)

	if !s.queue.Enqueue(sc) {
		// Persist queue unavailable: fall back to a synchronous write so a
		// finished recording is never lost.
		if err := s.store.Save(ctx, sc); err != nil {
			return nil, fmt.Errorf("save clip %s: %w", sc.ID, err)
		}
	}
	return sc, nil
}

// GetClip loads a sidecar and re-derives it when events are present, so
// stale cached outcome fields are never served.
func (s *clipService) GetClip(ctx context.Context, id string) (*models.Sidecar, error) {
	sc, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(sc.Events) > 0 {
		Derive(sc)
	}
	return sc, nil
}

func (s *clipService) ListClips(ctx context.Context, athlete string) ([]models.Sidecar, error) {
	if athlete != "" {
		return s.store.ListByAthlete(ctx, athlete)
	}
	return s.store.List(ctx)
}

func (s *clipService) AppendEvent(ctx context.Context, clipID string, ev models.Event) (*models.Sidecar, error) {
	return s.mutate(ctx, clipID, func(sc *models.Sidecar) error {
		sc.Events = append(sc.Events, ev)
		return nil
	})
}

// ReplaceEvent swaps an event's contents in place. The replacement keeps
// the target's ID so identifiers stay stable across edits that don't add or
// remove events.
func (s *clipService) ReplaceEvent(ctx context.Context, clipID, eventID string, ev models.Event) (*models.Sidecar, error) {
	return s.mutate(ctx, clipID, func(sc *models.Sidecar) error {
		for i := range sc.Events {
			if sc.Events[i].ID == eventID {
				ev.ID = eventID
				sc.Events[i] = ev
				return nil
			}
		}
		return ErrEventNotFound
	})
}

func (s *clipService) DeleteEvent(ctx context.Context, clipID, eventID string) (*models.Sidecar, error) {
	return s.mutate(ctx, clipID, func(sc *models.Sidecar) error {
		for i := range sc.Events {
			if sc.Events[i].ID == eventID {
				sc.Events = append(sc.Events[:i], sc.Events[i+1:]...)
				return nil
			}
		}
		return ErrEventNotFound
	})
}

// mutate applies one playback edit and runs the edit contract: full
// re-sort, re-accumulate, re-derive, atomic rewrite.
func (s *clipService) mutate(ctx context.Context, clipID string, apply func(*models.Sidecar) error) (*models.Sidecar, error) {
	sc, err := s.store.Load(ctx, clipID)
	if err != nil {
		return nil, err
	}
	if err := apply(sc); err != nil {
		return nil, err
	}

	out := Derive(sc)
	s.logger.Infow("clip re-derived after edit",
		"clip", sc.ID,
		"events", len(sc.Events),
		"outcome", out.Result,
		"endedBy", out.EndedBy,
	)

	if !s.queue.Enqueue(sc) {
		if err := s.store.Save(ctx, sc); err != nil {
			return nil, fmt.Errorf("save clip %s: %w", sc.ID, err)
		}
	}
	return sc, nil
}

func (s *clipService) ScoreAt(ctx context.Context, clipID string, t float64) (models.Score, error) {
	sc, err := s.GetClip(ctx, clipID)
	if err != nil {
		return models.Score{}, err
	}
	return ScoreAt(sc.Events, t), nil
}

func (s *clipService) Highlight(ctx context.Context, clipID string) (models.Highlight, error) {
	sc, err := s.GetClip(ctx, clipID)
	if err != nil {
		return models.Highlight{}, err
	}
	// A win by pin is highlight-worthy before any sport handler weighs in.
	return ClassifyHighlight(sc, sc.OutcomeResult, sc.AthletePinned), nil
}
