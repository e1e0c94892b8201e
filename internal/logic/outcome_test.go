package logic

import (
	"testing"

	"github.com/matchtape/stats-api/internal/models"
)

func derive(t *testing.T, events []models.Event, homeIsAthlete bool) models.Outcome {
	t.Helper()
	return DeriveOutcome(Accumulate(Normalize(events, homeIsAthlete)), homeIsAthlete)
}

func TestDeriveOutcomePinOverridesScore(t *testing.T) {
	// The athlete racks up a big lead and still gets pinned: score
	// comparison is never consulted once a pin is found.
	out := derive(t, []models.Event{
		{T: 1, Key: "takedown", Actor: models.ActorHome, Points: 2},
		{T: 2, Key: "nearfall", Actor: models.ActorHome, Points: 4},
		{T: 3, Key: "takedown", Actor: models.ActorHome, Points: 2},
		{T: 4, Key: "stalling", Actor: models.ActorHome, Points: 1},
		{T: 5, Key: "escape", Actor: models.ActorOpponent, Points: 2},
		{T: 10, Key: "pin", Actor: models.ActorOpponent},
	}, true)

	if out.FinalScore != (models.Score{Home: 9, Opponent: 2}) {
		t.Errorf("finalScore = %+v", out.FinalScore)
	}
	if out.Result != models.ResultLoss {
		t.Errorf("outcome = %s, want L", out.Result)
	}
	if out.EndedBy != models.EndedByPin {
		t.Errorf("endedBy = %s, want pin", out.EndedBy)
	}
	if !out.AthleteWasPinned || out.AthletePinned {
		t.Errorf("pin flags = pinned:%v wasPinned:%v", out.AthletePinned, out.AthleteWasPinned)
	}
	if out.Winner != models.ActorOpponent {
		t.Errorf("winner = %s, want opponent", out.Winner)
	}
}

func TestDeriveOutcomeAthleteWinsByPin(t *testing.T) {
	out := derive(t, []models.Event{
		{T: 30, Key: "fall", Actor: models.ActorHome},
	}, true)

	if out.Result != models.ResultWin || !out.AthletePinned || out.AthleteWasPinned {
		t.Errorf("got %+v, want athlete pin win", out)
	}
}

func TestDeriveOutcomePinViaMetaWinBy(t *testing.T) {
	out := derive(t, []models.Event{
		{T: 60, Key: "match_end", Actor: models.ActorHome, Meta: models.Meta{"winBy": "pin"}},
	}, true)
	if out.EndedBy != models.EndedByPin || out.Result != models.ResultWin {
		t.Errorf("got %+v, want pin win", out)
	}
}

func TestDeriveOutcomePinViaLabelSubstring(t *testing.T) {
	out := derive(t, []models.Event{
		{T: 60, Key: "finish", Actor: models.ActorOpponent, Meta: models.Meta{"label": "Won by Fall"}},
	}, true)
	if out.EndedBy != models.EndedByPin || out.Result != models.ResultLoss {
		t.Errorf("got %+v, want pin loss", out)
	}
}

func TestDeriveOutcomeNearfallIsNotAPin(t *testing.T) {
	out := derive(t, []models.Event{
		{T: 10, Key: "nearfall", Actor: models.ActorHome, Points: 4},
	}, true)
	if out.EndedBy != models.EndedByDecision {
		t.Errorf("endedBy = %s, want decision", out.EndedBy)
	}
}

func TestDeriveOutcomeNeutralPinIgnored(t *testing.T) {
	// A pin-like event with no resolvable side cannot decide the match.
	out := derive(t, []models.Event{
		{T: 5, Key: "takedown", Actor: models.ActorHome, Points: 2},
		{T: 9, Key: "pin"},
	}, true)
	if out.EndedBy != models.EndedByDecision || out.Result != models.ResultWin {
		t.Errorf("got %+v, want decision win", out)
	}
}

func TestDeriveOutcomeFirstPinWins(t *testing.T) {
	// Two conflicting pin-like events: the earliest in time order decides.
	out := derive(t, []models.Event{
		{T: 50, Key: "pin", Actor: models.ActorOpponent},
		{T: 20, Key: "pin", Actor: models.ActorHome},
	}, true)
	if out.Winner != models.ActorHome {
		t.Errorf("winner = %s, want home (earliest pin)", out.Winner)
	}
}

func TestDeriveOutcomeDecision(t *testing.T) {
	tests := []struct {
		name          string
		events        []models.Event
		homeIsAthlete bool
		wantResult    models.Result
		wantWinner    models.Actor
	}{
		{
			name: "athlete ahead",
			events: []models.Event{
				{T: 1, Key: "takedown", Actor: models.ActorHome, Points: 2},
			},
			homeIsAthlete: true,
			wantResult:    models.ResultWin,
			wantWinner:    models.ActorHome,
		},
		{
			name: "athlete behind as opponent side",
			events: []models.Event{
				{T: 1, Key: "takedown", Actor: models.ActorHome, Points: 2},
			},
			homeIsAthlete: false,
			wantResult:    models.ResultLoss,
			wantWinner:    models.ActorHome,
		},
		{
			name: "athlete on opponent side wins",
			events: []models.Event{
				{T: 1, Key: "takedown", Actor: models.ActorOpponent, Points: 2},
				{T: 2, Key: "escape", Actor: models.ActorHome, Points: 1},
			},
			homeIsAthlete: false,
			wantResult:    models.ResultWin,
			wantWinner:    models.ActorOpponent,
		},
		{
			name: "tie with no pin",
			events: []models.Event{
				{T: 1, Key: "takedown", Actor: models.ActorHome, Points: 4},
				{T: 2, Key: "takedown", Actor: models.ActorOpponent, Points: 4},
			},
			homeIsAthlete: true,
			wantResult:    models.ResultTie,
			wantWinner:    "",
		},
		{
			name:          "no events at all",
			events:        nil,
			homeIsAthlete: true,
			wantResult:    models.ResultTie,
			wantWinner:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := derive(t, tt.events, tt.homeIsAthlete)
			if out.EndedBy != models.EndedByDecision {
				t.Errorf("endedBy = %s, want decision", out.EndedBy)
			}
			if out.Result != tt.wantResult {
				t.Errorf("outcome = %s, want %s", out.Result, tt.wantResult)
			}
			if out.Winner != tt.wantWinner {
				t.Errorf("winner = %q, want %q", out.Winner, tt.wantWinner)
			}
		})
	}
}
