package logic

import (
	"sort"
	"strconv"
	"strings"

	"github.com/matchtape/stats-api/internal/models"
)

// penaltyKinds are event kinds whose points are awarded for an infraction
// rather than a scoring action.
var penaltyKinds = map[string]bool{
	"stall":    true,
	"stalling": true,
	"caution":  true,
	"penalty":  true,
	"warning":  true,
}

// Directional meta keys naming the side an event benefits, in lookup order.
var benefitMetaKeys = []string{"to", "toSide", "scorer", "awardedTo", "pointTo", "benefit"}

// Meta keys naming the side an event was called against; the benefiting
// side is the opposite one.
var againstMetaKeys = []string{"against", "on", "calledOn", "penalized", "who", "side"}

func isPenaltyKind(key string) bool {
	return penaltyKinds[strings.ToLower(key)]
}

// Normalize prepares a raw event list for derivation: it assigns stable
// IDs where missing, resolves actors, and sorts ascending by timestamp with
// ties broken by input index. The input slice is not modified.
func Normalize(events []models.Event, homeIsAthlete bool) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)

	for i := range out {
		if out[i].ID == "" {
			out[i].ID = eventID(out[i].T, i)
		}
		out[i].Actor = ResolveActor(out[i], homeIsAthlete)
	}

	// Stable sort keeps input order for equal timestamps, which in turn
	// keeps generated IDs stable across passes over the same event set.
	sort.SliceStable(out, func(a, b int) bool { return out[a].T < out[b].T })
	return out
}

// eventID derives a deterministic identifier from the event's timestamp and
// its position in the raw input.
func eventID(t float64, index int) string {
	return "ev-" + strconv.FormatFloat(t, 'f', -1, 64) + "-" + strconv.Itoa(index)
}

// ResolveActor resolves the side an event is attributed to. An already
// valid actor is never overridden, which makes inference idempotent.
//
// For events without one, precedence is: directional meta keys, then
// "against" meta keys (inverted), then the penalty default, then neutral.
func ResolveActor(e models.Event, homeIsAthlete bool) models.Actor {
	if e.Actor.Valid() {
		return e.Actor
	}

	for _, key := range benefitMetaKeys {
		if side := sideFromToken(e.Meta.Str(key), homeIsAthlete); side != models.ActorNeutral {
			return side
		}
	}

	// A penalty called "against home" benefits the opponent.
	for _, key := range againstMetaKeys {
		if side := sideFromToken(e.Meta.Str(key), homeIsAthlete); side != models.ActorNeutral {
			return side.Opposite()
		}
	}

	// Penalty entries without directional meta: the recording UI always
	// enters penalties with the athlete's side benefiting, with or without
	// an attached point value.
	if isPenaltyKind(e.Key) {
		return athleteSide(homeIsAthlete)
	}

	return models.ActorNeutral
}

// sideFromToken normalizes the side synonyms found in legacy meta values.
// Returns ActorNeutral when the token is empty or unrecognized.
func sideFromToken(token string, homeIsAthlete bool) models.Actor {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "home", "h":
		return models.ActorHome
	case "opponent", "opp", "o":
		return models.ActorOpponent
	case "athlete", "me", "us", "our":
		return athleteSide(homeIsAthlete)
	case "them", "their", "away", "visitor":
		return athleteSide(homeIsAthlete).Opposite()
	}
	return models.ActorNeutral
}

func athleteSide(homeIsAthlete bool) models.Actor {
	if homeIsAthlete {
		return models.ActorHome
	}
	return models.ActorOpponent
}
