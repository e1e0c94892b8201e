package logic

import (
	"testing"

	"github.com/matchtape/stats-api/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestReduceUnknownSportDegrades(t *testing.T) {
	registry := NewReducerRegistry()
	clips := []models.Sidecar{
		{ID: "a", Events: []models.Event{{T: 1, Key: "stone"}, {T: 2, Key: "stone"}}},
		{ID: "b", Events: []models.Event{{T: 1, Key: "stone"}}},
	}

	stats := registry.Reduce("curling:default", clips)

	if !stats.MissingReducer {
		t.Error("missingReducer not set")
	}
	if stats.SportKey != "curling:default" {
		t.Errorf("sportKey = %s", stats.SportKey)
	}
	if stats.Totals.Clips != 2 || stats.Totals.Events != 3 {
		t.Errorf("totals = %+v, want {2 3}", stats.Totals)
	}
}

func TestWrestlingReducerOffenderAttribution(t *testing.T) {
	// Passivity point awarded to the opponent, but home committed the
	// infraction: the count belongs to home regardless of the point actor.
	home := true
	clips := []models.Sidecar{{
		ID:            "clip",
		HomeIsAthlete: &home,
		Events: Accumulate(Normalize([]models.Event{
			{T: 10, Key: "passivity", Actor: models.ActorOpponent, Points: 1, Meta: models.Meta{"offender": "home"}},
		}, home)),
	}}

	stats := NewReducerRegistry().Reduce("wrestling:freestyle", clips)

	count := stats.Counters["passivity"]
	if count.Athlete != 1 || count.Opponent != 0 {
		t.Errorf("passivity = %+v, want athlete:1", count)
	}
	// The point itself still goes to the beneficiary.
	if stats.Points.Athlete != 0 || stats.Points.Opponent != 1 {
		t.Errorf("points = %+v, want opp:1", stats.Points)
	}
}

func TestWrestlingReducerOffenderFallback(t *testing.T) {
	// Without meta.offender, the offender is the opposite of the
	// beneficiary.
	clips := []models.Sidecar{{
		ID: "clip",
		Events: []models.Event{
			{T: 5, Key: "caution", Actor: models.ActorHome, Points: 1},
		},
	}}

	stats := NewReducerRegistry().Reduce("wrestling:greco", clips)
	count := stats.Counters["caution"]
	if count.Opponent != 1 || count.Athlete != 0 {
		t.Errorf("caution = %+v, want opponent:1", count)
	}
}

func TestWrestlingReducerActionCounters(t *testing.T) {
	clips := []models.Sidecar{{
		ID: "clip",
		Events: []models.Event{
			{T: 1, Key: "takedown", Actor: models.ActorHome, Points: 2},
			{T: 2, Key: "takedown", Actor: models.ActorOpponent, Points: 2},
			{T: 3, Key: "exposure", Actor: models.ActorHome, Points: 2},
			{T: 4, Key: "pushout", Actor: models.ActorHome, Points: 1},
			{T: 5, Key: "pin", Actor: models.ActorHome},
		},
	}}

	stats := NewReducerRegistry().Reduce("wrestling:freestyle", clips)

	if got := stats.Counters["takedown"]; got.Athlete != 1 || got.Opponent != 1 {
		t.Errorf("takedown = %+v", got)
	}
	if got := stats.Counters["exposure"]; got.Athlete != 1 {
		t.Errorf("exposure = %+v", got)
	}
	if got := stats.Counters["out"]; got.Athlete != 1 {
		t.Errorf("out = %+v", got)
	}
	if got := stats.Counters["pin"]; got.Athlete != 1 {
		t.Errorf("pin = %+v", got)
	}
	if stats.Points.Athlete != 5 || stats.Points.Opponent != 2 {
		t.Errorf("points = %+v", stats.Points)
	}
}

func TestWrestlingReducerAthleteSidePerClip(t *testing.T) {
	// Two clips with opposite homeIsAthlete: the tally is athlete-relative
	// per clip, not side-relative.
	clips := []models.Sidecar{
		{
			ID: "as-home",
			Events: []models.Event{
				{T: 1, Key: "takedown", Actor: models.ActorHome, Points: 2},
			},
		},
		{
			ID:            "as-opponent",
			HomeIsAthlete: boolPtr(false),
			Events: []models.Event{
				{T: 1, Key: "takedown", Actor: models.ActorOpponent, Points: 2},
			},
		},
	}

	stats := NewReducerRegistry().Reduce("wrestling:folkstyle", clips)
	if stats.Points.Athlete != 4 || stats.Points.Opponent != 0 {
		t.Errorf("points = %+v, want athlete:4", stats.Points)
	}
	if got := stats.Counters["takedown"]; got.Athlete != 2 {
		t.Errorf("takedown = %+v, want athlete:2", got)
	}
}

func TestBaseballReducerCounters(t *testing.T) {
	clips := []models.Sidecar{{
		ID: "at-bat",
		Events: []models.Event{
			{T: 1, Key: "ball"},
			{T: 2, Key: "strike"},
			{T: 3, Key: "foul"},
			{T: 4, Key: "ball"},
			{T: 5, Key: "homerun", Actor: models.ActorHome, Points: 1},
		},
	}}

	stats := NewReducerRegistry().Reduce("baseball:hitting", clips)

	if got := stats.Counters["balls"]; got.Athlete != 2 {
		t.Errorf("balls = %+v", got)
	}
	if got := stats.Counters["strikes"]; got.Athlete != 1 {
		t.Errorf("strikes = %+v", got)
	}
	if got := stats.Counters["fouls"]; got.Athlete != 1 {
		t.Errorf("fouls = %+v", got)
	}
	if got := stats.Counters["homeruns"]; got.Athlete != 1 {
		t.Errorf("homeruns = %+v", got)
	}
}

func TestReducersTolerateEmptyClips(t *testing.T) {
	registry := NewReducerRegistry()
	for key := range registry {
		stats := registry.Reduce(key, []models.Sidecar{{ID: "empty"}, {ID: "also-empty"}})
		if stats.Totals.Clips != 2 || stats.Totals.Events != 0 {
			t.Errorf("%s: totals = %+v", key, stats.Totals)
		}
	}
}

func TestRegistryExtension(t *testing.T) {
	// Adding a sport is one entry, nothing else changes.
	registry := NewReducerRegistry()
	registry["curling:default"] = func(clips []models.Sidecar) models.SportStats {
		return models.SportStats{SportKey: "curling:default", Totals: clipTotals(clips)}
	}

	stats := registry.Reduce("curling:default", []models.Sidecar{{ID: "x"}})
	if stats.MissingReducer {
		t.Error("custom reducer not dispatched")
	}
}
