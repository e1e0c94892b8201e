package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EndedBy values for Outcome.
const (
	EndedByPin      = "pin"
	EndedByDecision = "decision"
)

// Result is the athlete-relative match result.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultTie  Result = "T"
	ResultNone Result = ""
)

// Outcome is the derived bundle written back into a sidecar after each
// derivation pass.
type Outcome struct {
	FinalScore       Score  `json:"finalScore"`
	Result           Result `json:"outcome"`
	Winner           Actor  `json:"winner,omitempty"` // empty on a tie
	EndedBy          string `json:"endedBy"`
	AthletePinned    bool   `json:"athletePinned"`
	AthleteWasPinned bool   `json:"athleteWasPinned"`
}

// Sidecar is the per-clip record: metadata, the event stream, and cached
// derived fields. Everything beyond Events and HomeIsAthlete is a cache and
// is recomputed from Events whenever they change.
type Sidecar struct {
	ID        string    `json:"id,omitempty"`
	Athlete   string    `json:"athlete"`
	Sport     string    `json:"sport"`
	Style     string    `json:"style,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`

	// Events is insertion-ordered as captured; not guaranteed time-sorted
	// on disk.
	Events []Event `json:"events"`

	// HomeIsAthlete selects which side represents the tracked athlete.
	// Absent means true (home). Pointer keeps "absent" distinguishable.
	HomeIsAthlete *bool `json:"homeIsAthlete,omitempty"`

	HomeColorIsGreen bool   `json:"homeColorIsGreen,omitempty"`
	AppVersion       string `json:"appVersion,omitempty"`

	// Derived caches (see Outcome).
	FinalScore       *Score `json:"finalScore,omitempty"`
	OutcomeResult    Result `json:"outcome,omitempty"`
	Winner           Actor  `json:"winner,omitempty"`
	EndedBy          string `json:"endedBy,omitempty"`
	AthletePinned    bool   `json:"athletePinned,omitempty"`
	AthleteWasPinned bool   `json:"athleteWasPinned,omitempty"`

	ModifiedAt time.Time `json:"modifiedAt,omitempty"`

	// Extra holds unrecognized top-level fields from older or newer app
	// versions. They are carried through save/load untouched.
	Extra map[string]json.RawMessage `json:"-"`
}

// HomeSideIsAthlete resolves the HomeIsAthlete default (true when absent).
func (s *Sidecar) HomeSideIsAthlete() bool {
	return s.HomeIsAthlete == nil || *s.HomeIsAthlete
}

// AthleteSide returns the side representing the tracked athlete.
func (s *Sidecar) AthleteSide() Actor {
	if s.HomeSideIsAthlete() {
		return ActorHome
	}
	return ActorOpponent
}

// ApplyOutcome writes a derived outcome bundle back into the sidecar's
// cache fields.
func (s *Sidecar) ApplyOutcome(o Outcome) {
	score := o.FinalScore
	s.FinalScore = &score
	s.OutcomeResult = o.Result
	s.Winner = o.Winner
	s.EndedBy = o.EndedBy
	s.AthletePinned = o.AthletePinned
	s.AthleteWasPinned = o.AthleteWasPinned
}

// sidecarKnownKeys are the top-level JSON fields owned by this struct;
// anything else round-trips through Extra.
var sidecarKnownKeys = map[string]bool{
	"id": true, "athlete": true, "sport": true, "style": true,
	"createdAt": true, "events": true, "homeIsAthlete": true,
	"homeColorIsGreen": true, "appVersion": true, "finalScore": true,
	"outcome": true, "winner": true, "endedBy": true,
	"athletePinned": true, "athleteWasPinned": true, "modifiedAt": true,
}

// UnmarshalJSON decodes a sidecar while preserving unknown top-level
// fields in Extra.
func (s *Sidecar) UnmarshalJSON(data []byte) error {
	type alias Sidecar
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("sidecar decode: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("sidecar decode: %w", err)
	}
	for key := range raw {
		if sidecarKnownKeys[key] {
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]json.RawMessage)
		}
		a.Extra[key] = raw[key]
	}

	*s = Sidecar(a)
	return nil
}

// MarshalJSON re-emits preserved unknown fields alongside the known ones.
// Known fields always win on key collision.
func (s Sidecar) MarshalJSON() ([]byte, error) {
	type alias Sidecar
	known, err := json.Marshal(alias(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, val := range s.Extra {
		if _, taken := merged[key]; !taken {
			merged[key] = val
		}
	}
	return json.Marshal(merged)
}
