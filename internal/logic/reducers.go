package logic

import (
	"github.com/matchtape/stats-api/internal/models"
)

// SportReducer aggregates one sport's clips into named statistics. The
// caller has already filtered the clip list to a single sport key; reducers
// must tolerate clips with zero events.
type SportReducer func(clips []models.Sidecar) models.SportStats

// ReducerRegistry maps canonical sport keys to reducers. It is built with
// NewReducerRegistry and passed to the summary builder explicitly — there
// is no init-time registration, so registry contents never depend on import
// order. Adding a sport means adding one reducer function and one entry
// here.
type ReducerRegistry map[string]SportReducer

func NewReducerRegistry() ReducerRegistry {
	return ReducerRegistry{
		"wrestling:folkstyle": wrestlingReducer("wrestling:folkstyle"),
		"wrestling:freestyle": wrestlingReducer("wrestling:freestyle"),
		"wrestling:greco":     wrestlingReducer("wrestling:greco"),
		"baseball:hitting":    baseballReducer("baseball:hitting"),
		"baseball:pitching":   baseballReducer("baseball:pitching"),
		"softball:hitting":    baseballReducer("softball:hitting"),
		"softball:pitching":   baseballReducer("softball:pitching"),
		"volleyball:default":  volleyballReducer("volleyball:default"),
	}
}

// Reduce dispatches to the reducer for sportKey. Unknown keys never fail:
// they degrade to a totals-only stub so one unrecognized sport cannot sink
// a whole athlete summary.
func (r ReducerRegistry) Reduce(sportKey string, clips []models.Sidecar) models.SportStats {
	if reduce, ok := r[sportKey]; ok {
		return reduce(clips)
	}
	return models.SportStats{
		SportKey:       sportKey,
		MissingReducer: true,
		Totals:         clipTotals(clips),
	}
}

func clipTotals(clips []models.Sidecar) models.ClipTotals {
	totals := models.ClipTotals{Clips: len(clips)}
	for i := range clips {
		totals.Events += len(clips[i].Events)
	}
	return totals
}

// baseStats computes the side-split point tally shared by every reducer.
// The athlete's side is resolved per clip from that clip's own
// homeIsAthlete flag.
func baseStats(sportKey string, clips []models.Sidecar) models.SportStats {
	stats := models.SportStats{
		SportKey: sportKey,
		Totals:   clipTotals(clips),
		Counters: make(map[string]models.SideCount),
	}
	for i := range clips {
		athlete := clips[i].AthleteSide()
		for _, e := range clips[i].Events {
			if e.Points <= 0 {
				continue
			}
			switch e.Actor {
			case athlete:
				stats.Points.Athlete += e.Points
			case athlete.Opposite():
				stats.Points.Opponent += e.Points
			}
		}
	}
	return stats
}

// bump increments a named counter for the given side, relative to the
// clip's athlete.
func bump(stats *models.SportStats, name string, side, athlete models.Actor) {
	count := stats.Counters[name]
	switch side {
	case athlete:
		count.Athlete++
	case athlete.Opposite():
		count.Opponent++
	default:
		// Side-less events count toward the athlete's column; the app
		// records neutral game-state events (balls, strikes) in the
		// tracked athlete's context.
		count.Athlete++
	}
	stats.Counters[name] = count
}

// offenderSide resolves who committed an infraction. Offender/receiver
// events (passivity, flee, penalty) award points to the beneficiary, so the
// scoring actor is the wrong side to count; meta.offender names the side
// that was actually penalized. Without it, the offender is taken to be the
// opposite of the beneficiary.
func offenderSide(clip *models.Sidecar, e models.Event) models.Actor {
	if side := sideFromToken(e.Meta.Str("offender"), clip.HomeSideIsAthlete()); side != models.ActorNeutral {
		return side
	}
	if e.Actor == models.ActorHome || e.Actor == models.ActorOpponent {
		return e.Actor.Opposite()
	}
	return clip.AthleteSide().Opposite()
}
