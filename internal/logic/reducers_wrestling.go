package logic

import (
	"strings"

	"github.com/matchtape/stats-api/internal/models"
)

// Wrestling counter names keyed by event kind. Folkstyle, freestyle, and
// greco share the same counter vocabulary; kinds a style never records
// simply stay at zero.
var wrestlingActionKinds = map[string]string{
	"takedown": "takedown",
	"escape":   "escape",
	"reversal": "reversal",
	"nearfall": "nearfall",
	"exposure": "exposure",
	"out":      "out",
	"pushout":  "out",
	"pin":      "pin",
	"fall":     "pin",
}

// Infraction kinds where the statistic belongs to the offender, not the
// side the points were awarded to.
var wrestlingInfractionKinds = map[string]string{
	"passivity": "passivity",
	"penalty":   "penalty",
	"flee":      "flee",
	"caution":   "caution",
	"stall":     "stalling",
	"stalling":  "stalling",
	"warning":   "warning",
}

func wrestlingReducer(sportKey string) SportReducer {
	return func(clips []models.Sidecar) models.SportStats {
		stats := baseStats(sportKey, clips)
		for i := range clips {
			clip := &clips[i]
			athlete := clip.AthleteSide()
			for _, e := range clip.Events {
				kind := strings.ToLower(e.Key)
				if name, ok := wrestlingInfractionKinds[kind]; ok {
					bump(&stats, name, offenderSide(clip, e), athlete)
					continue
				}
				if name, ok := wrestlingActionKinds[kind]; ok {
					bump(&stats, name, e.Actor, athlete)
				}
			}
		}
		return stats
	}
}
