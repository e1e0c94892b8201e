package logic

import (
	"strings"

	"github.com/matchtape/stats-api/internal/models"
)

var baseballKinds = map[string]string{
	"ball":      "balls",
	"strike":    "strikes",
	"foul":      "fouls",
	"out":       "outs",
	"hit":       "hits",
	"single":    "hits",
	"double":    "hits",
	"triple":    "hits",
	"homerun":   "homeruns",
	"home_run":  "homeruns",
	"walk":      "walks",
	"strikeout": "strikeouts",
	"k":         "strikeouts",
	"hbp":       "hitByPitch",
	"error":     "errors",
}

// baseballReducer serves both hitting and pitching keys; the counters are
// the same vocabulary, polarity is the presentation layer's concern.
func baseballReducer(sportKey string) SportReducer {
	return func(clips []models.Sidecar) models.SportStats {
		stats := baseStats(sportKey, clips)
		for i := range clips {
			clip := &clips[i]
			athlete := clip.AthleteSide()
			for _, e := range clip.Events {
				if name, ok := baseballKinds[strings.ToLower(e.Key)]; ok {
					bump(&stats, name, e.Actor, athlete)
				}
			}
		}
		return stats
	}
}
