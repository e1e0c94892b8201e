package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/matchtape/stats-api/internal/models"
)

type statsService struct {
	store    ClipStore
	registry ReducerRegistry
	cache    RedisClient // nil disables caching
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

func NewStatsService(store ClipStore, registry ReducerRegistry, cache RedisClient, cacheTTL time.Duration, logger *zap.Logger) StatsService {
	return &statsService{
		store:    store,
		registry: registry,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.Sugar(),
	}
}

func summaryCacheKey(athlete string) string {
	return "summary:" + athlete
}

// AthleteSummary builds the cross-clip aggregate for one athlete. Summaries
// are cached in redis when a client is configured; cache failures are
// logged and the summary is rebuilt from the store.
func (s *statsService) AthleteSummary(ctx context.Context, athlete string) (*models.AthleteStatsSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, summaryCacheKey(athlete)).Result(); err == nil {
			var summary models.AthleteStatsSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
			s.logger.Warnw("discarding undecodable cached summary", "athlete", athlete)
		}
	}

	clips, err := s.store.ListByAthlete(ctx, athlete)
	if err != nil {
		return nil, fmt.Errorf("list clips for %s: %w", athlete, err)
	}

	summary, err := BuildAthleteSummary(ctx, athlete, clips, s.registry)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, summaryCacheKey(athlete), payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warnw("failed to cache summary", "athlete", athlete, "error", err)
			}
		}
	}
	return summary, nil
}
