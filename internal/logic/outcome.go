package logic

import (
	"strings"

	"github.com/matchtape/stats-api/internal/models"
)

// isPinEvent reports whether an event represents a pin/fall. Matched by
// exact kind, by meta.winBy, or by a "pin"/"fall" substring in the event's
// display label. The label check is deliberately not applied to the kind
// itself: "nearfall" is a scoring action, not a fall.
func isPinEvent(e models.Event) bool {
	key := strings.ToLower(e.Key)
	if key == "pin" || key == "fall" {
		return true
	}
	if strings.EqualFold(e.Meta.Str("winBy"), "pin") {
		return true
	}
	label := strings.ToLower(e.Meta.Str("label"))
	return label != "" && (strings.Contains(label, "pin") || strings.Contains(label, "fall"))
}

// DeriveOutcome computes the outcome bundle from a time-sorted, accumulated
// event list. A pin-based outcome overrides the score comparison entirely:
// a pinned athlete loses no matter the margin.
//
// When several pin-like events exist the first in time order wins, matching
// how the capture app has always resolved conflicting entries.
func DeriveOutcome(events []models.Event, homeIsAthlete bool) models.Outcome {
	out := models.Outcome{
		FinalScore: FinalScore(events),
		EndedBy:    models.EndedByDecision,
	}
	athlete := athleteSide(homeIsAthlete)

	for _, e := range events {
		if !isPinEvent(e) {
			continue
		}
		if e.Actor != models.ActorHome && e.Actor != models.ActorOpponent {
			continue
		}
		out.EndedBy = models.EndedByPin
		out.Winner = e.Actor
		out.AthletePinned = e.Actor == athlete
		out.AthleteWasPinned = e.Actor == athlete.Opposite()
		if out.AthletePinned {
			out.Result = models.ResultWin
		} else {
			out.Result = models.ResultLoss
		}
		return out
	}

	// Decision: raw winner side compares home vs opponent directly; the
	// athlete-relative result compares the athlete's own score.
	switch {
	case out.FinalScore.Home > out.FinalScore.Opponent:
		out.Winner = models.ActorHome
	case out.FinalScore.Home < out.FinalScore.Opponent:
		out.Winner = models.ActorOpponent
	}

	mine, theirs := out.FinalScore.Home, out.FinalScore.Opponent
	if !homeIsAthlete {
		mine, theirs = theirs, mine
	}
	switch {
	case mine > theirs:
		out.Result = models.ResultWin
	case mine < theirs:
		out.Result = models.ResultLoss
	default:
		out.Result = models.ResultTie
	}
	return out
}
