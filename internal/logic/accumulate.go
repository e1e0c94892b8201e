package logic

import (
	"sort"

	"github.com/matchtape/stats-api/internal/models"
)

// Accumulate folds a time-sorted event list into running scores, writing a
// fresh ScoreAfter snapshot onto every event. Any cached snapshots are
// overwritten: score is a pure fold over (actor, points) pairs, so
// re-running on already-accumulated events reproduces identical values.
//
// Only events with a positive point value and a home/opponent actor move
// the score. Zero, negative, or missing points and neutral actors are
// score-neutral but stay in the sequence.
func Accumulate(events []models.Event) []models.Event {
	var running models.Score
	for i := range events {
		if events[i].Points > 0 {
			switch events[i].Actor {
			case models.ActorHome:
				running.Home += events[i].Points
			case models.ActorOpponent:
				running.Opponent += events[i].Points
			}
		}
		snap := running
		events[i].ScoreAfter = &snap
	}
	return events
}

// FinalScore returns the terminal running score of an accumulated list,
// zero when there are no events.
func FinalScore(events []models.Event) models.Score {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].ScoreAfter != nil {
			return *events[i].ScoreAfter
		}
	}
	return models.Score{}
}

// ScoreAt returns the live score at time t: the snapshot of the last
// accumulated event with T <= t, or zero before the first event.
func ScoreAt(events []models.Event, t float64) models.Score {
	idx := sort.Search(len(events), func(i int) bool { return events[i].T > t }) - 1
	for ; idx >= 0; idx-- {
		if events[idx].ScoreAfter != nil {
			return *events[idx].ScoreAfter
		}
	}
	return models.Score{}
}
