package handlers

import (
	"context"
	"errors"

	"github.com/matchtape/stats-api/internal/logic"
	"github.com/matchtape/stats-api/internal/models"
	"github.com/matchtape/stats-api/internal/store"
)

type MockQueue struct {
	depth int
}

func (m *MockQueue) Enqueue(sc *models.Sidecar) bool { return true }
func (m *MockQueue) QueueDepth() int                 { return m.depth }

// MockClipService serves clips from an in-memory map and records edits.
type MockClipService struct {
	clips    map[string]*models.Sidecar
	appended []models.Event
	scoreAt  models.Score
}

func (m *MockClipService) CreateClip(ctx context.Context, req *models.CreateClipRequest) (*models.Sidecar, error) {
	sc := &models.Sidecar{
		ID:            "new-clip",
		Athlete:       req.Athlete,
		Sport:         req.Sport,
		Style:         req.Style,
		Events:        req.Events,
		OutcomeResult: models.ResultWin,
	}
	return sc, nil
}

func (m *MockClipService) GetClip(ctx context.Context, id string) (*models.Sidecar, error) {
	sc, ok := m.clips[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return sc, nil
}

func (m *MockClipService) ListClips(ctx context.Context, athlete string) ([]models.Sidecar, error) {
	var out []models.Sidecar
	for _, sc := range m.clips {
		out = append(out, *sc)
	}
	return out, nil
}

func (m *MockClipService) AppendEvent(ctx context.Context, clipID string, ev models.Event) (*models.Sidecar, error) {
	sc, ok := m.clips[clipID]
	if !ok {
		return nil, store.ErrNotFound
	}
	m.appended = append(m.appended, ev)
	return sc, nil
}

func (m *MockClipService) ReplaceEvent(ctx context.Context, clipID, eventID string, ev models.Event) (*models.Sidecar, error) {
	sc, ok := m.clips[clipID]
	if !ok {
		return nil, store.ErrNotFound
	}
	for _, existing := range sc.Events {
		if existing.ID == eventID {
			return sc, nil
		}
	}
	return nil, logic.ErrEventNotFound
}

func (m *MockClipService) DeleteEvent(ctx context.Context, clipID, eventID string) (*models.Sidecar, error) {
	return m.ReplaceEvent(ctx, clipID, eventID, models.Event{})
}

func (m *MockClipService) ScoreAt(ctx context.Context, clipID string, t float64) (models.Score, error) {
	if _, ok := m.clips[clipID]; !ok {
		return models.Score{}, store.ErrNotFound
	}
	return m.scoreAt, nil
}

func (m *MockClipService) Highlight(ctx context.Context, clipID string) (models.Highlight, error) {
	if _, ok := m.clips[clipID]; !ok {
		return models.Highlight{}, store.ErrNotFound
	}
	return models.Highlight{EdgeColor: models.ColorGreen, HighlightGold: true}, nil
}

type MockStatsService struct {
	summary *models.AthleteStatsSummary
	err     error
}

func (m *MockStatsService) AthleteSummary(ctx context.Context, athlete string) (*models.AthleteStatsSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.summary == nil {
		return nil, errors.New("no summary configured")
	}
	return m.summary, nil
}
