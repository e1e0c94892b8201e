package models

// Actor identifies which side of the match an event is attributed to.
type Actor string

const (
	ActorHome     Actor = "home"
	ActorOpponent Actor = "opponent"
	ActorNeutral  Actor = "neutral"
)

// Valid reports whether a is one of the three recognized sides.
func (a Actor) Valid() bool {
	return a == ActorHome || a == ActorOpponent || a == ActorNeutral
}

// Opposite returns the other scoring side. Neutral has no opposite.
func (a Actor) Opposite() Actor {
	switch a {
	case ActorHome:
		return ActorOpponent
	case ActorOpponent:
		return ActorHome
	default:
		return ActorNeutral
	}
}

// Score is a home/opponent point snapshot.
type Score struct {
	Home     float64 `json:"home"`
	Opponent float64 `json:"opponent"`
}

// Event is one discrete scoring or game-state action within a clip.
//
// Legacy payloads are inconsistent: the action type may arrive as "kind"
// instead of "key", the point value as "value" instead of "points", and
// numerics may be string-encoded. UnmarshalJSON (flex_json.go) accepts all
// of those shapes; this struct is the canonical form.
type Event struct {
	ID     string  `json:"_id,omitempty"`
	T      float64 `json:"t"`
	Key    string  `json:"key"`
	Actor  Actor   `json:"actor,omitempty"`
	Points float64 `json:"points,omitempty"`
	Meta   Meta    `json:"meta,omitempty"`

	// ScoreAfter is the running score once this event is applied. It is a
	// cache: accumulation overwrites it on every derivation pass.
	ScoreAfter *Score `json:"scoreAfter,omitempty"`
}

// Meta is the open, sport-specific attribute bag attached to an event.
// Consumers read individual keys through the tolerant accessors below and
// treat the rest as opaque.
type Meta map[string]any

// Str returns the value for key if it is a string, or "" if missing or of
// another type.
func (m Meta) Str(key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// Num returns the numeric value for key. JSON numbers decode as float64;
// legacy clients sometimes string-encode them, so quoted numerics are
// accepted too. The second return is false if the key is missing or not
// usable as a number.
func (m Meta) Num(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		return parseFlexFloat(v)
	}
	return 0, false
}

// Bool returns the boolean value for key, tolerating "true"/"false" strings.
func (m Meta) Bool(key string) (bool, bool) {
	if m == nil {
		return false, false
	}
	switch v := m[key].(type) {
	case bool:
		return v, true
	case string:
		if v == "true" {
			return true, true
		}
		if v == "false" {
			return false, true
		}
	}
	return false, false
}
