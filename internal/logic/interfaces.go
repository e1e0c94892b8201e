package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matchtape/stats-api/internal/models"
)

// ClipStore defines the persistence interface for sidecar records.
// Implemented by the file store in internal/store.
type ClipStore interface {
	Save(ctx context.Context, sc *models.Sidecar) error
	Load(ctx context.Context, id string) (*models.Sidecar, error)
	List(ctx context.Context) ([]models.Sidecar, error)
	ListByAthlete(ctx context.Context, athlete string) ([]models.Sidecar, error)
}

// PersistQueue defines the interface for the async sidecar persist pool.
type PersistQueue interface {
	Enqueue(sc *models.Sidecar) bool
	QueueDepth() int
}

// RedisClient defines the subset of the Redis client used for summary
// caching.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ClipService owns sidecar lifecycle operations: creation from a finished
// recording and playback-mode event edits, each followed by a full
// re-derivation.
type ClipService interface {
	CreateClip(ctx context.Context, req *models.CreateClipRequest) (*models.Sidecar, error)
	GetClip(ctx context.Context, id string) (*models.Sidecar, error)
	ListClips(ctx context.Context, athlete string) ([]models.Sidecar, error)
	AppendEvent(ctx context.Context, clipID string, ev models.Event) (*models.Sidecar, error)
	ReplaceEvent(ctx context.Context, clipID, eventID string, ev models.Event) (*models.Sidecar, error)
	DeleteEvent(ctx context.Context, clipID, eventID string) (*models.Sidecar, error)
	ScoreAt(ctx context.Context, clipID string, t float64) (models.Score, error)
	Highlight(ctx context.Context, clipID string) (models.Highlight, error)
}

// StatsService builds athlete statistics summaries across clips.
type StatsService interface {
	AthleteSummary(ctx context.Context, athlete string) (*models.AthleteStatsSummary, error)
}
