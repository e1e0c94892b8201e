package logic

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matchtape/stats-api/internal/models"
)

// BuildAthleteSummary fans in all of one athlete's clips: each clip is
// freshly re-derived (cached derived fields are never trusted), grouped by
// canonical sport key, and reduced per sport in parallel. Sports without a
// registered reducer appear as degraded totals-only stubs rather than
// failing the summary.
func BuildAthleteSummary(ctx context.Context, athlete string, clips []models.Sidecar, registry ReducerRegistry) (*models.AthleteStatsSummary, error) {
	summary := &models.AthleteStatsSummary{
		Athlete:   athlete,
		UpdatedAt: time.Now().UTC(),
		BySport:   make(map[string]models.SportStats),
	}

	groups := make(map[string][]models.Sidecar)
	for i := range clips {
		clip := clips[i]
		Derive(&clip)
		key := SportKeyFromSidecar(&clip)
		groups[key] = append(groups[key], clip)
		summary.Totals.Videos++
		summary.Totals.Events += len(clip.Events)
	}

	g, _ := errgroup.WithContext(ctx)
	var mu sync.Mutex
	for key, group := range groups {
		key, group := key, group
		g.Go(func() error {
			stats := registry.Reduce(key, group)
			mu.Lock()
			summary.BySport[key] = stats
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
