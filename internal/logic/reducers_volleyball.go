package logic

import (
	"strings"

	"github.com/matchtape/stats-api/internal/models"
)

var volleyballKinds = map[string]string{
	"kill":          "kills",
	"ace":           "aces",
	"block":         "blocks",
	"dig":           "digs",
	"assist":        "assists",
	"serve_error":   "serviceErrors",
	"service_error": "serviceErrors",
	"error":         "errors",
}

func volleyballReducer(sportKey string) SportReducer {
	return func(clips []models.Sidecar) models.SportStats {
		stats := baseStats(sportKey, clips)
		for i := range clips {
			clip := &clips[i]
			athlete := clip.AthleteSide()
			for _, e := range clip.Events {
				if name, ok := volleyballKinds[strings.ToLower(e.Key)]; ok {
					bump(&stats, name, e.Actor, athlete)
				}
			}
		}
		return stats
	}
}
