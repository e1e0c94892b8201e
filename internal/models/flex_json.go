package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Legacy mobile builds serialized events with inconsistent field names
// ("kind" vs "key", "value" vs "points") and frequently string-encoded
// numerics ("t":"12.5"). Decoding is therefore field-by-field with
// coercion rather than a plain struct unmarshal.

// UnmarshalJSON implements flexible decoding for Event. It accepts both
// the canonical and the historical field names and coerces quoted numbers
// to their native types. Malformed fields degrade to zero values; decoding
// an event never fails on bad field contents, only on invalid JSON.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("event decode: %w", err)
	}

	e.ID = flexString(raw["_id"])

	e.T = 0
	if v, ok := flexFloat(raw["t"]); ok {
		e.T = v
	}

	// "key" preferred, "kind" accepted for historical payloads.
	e.Key = flexString(raw["key"])
	if e.Key == "" {
		e.Key = flexString(raw["kind"])
	}

	e.Actor = Actor(strings.ToLower(flexString(raw["actor"])))

	// "points" preferred over legacy "value".
	e.Points = 0
	if v, ok := flexFloat(raw["points"]); ok {
		e.Points = v
	} else if v, ok := flexFloat(raw["value"]); ok {
		e.Points = v
	}

	e.Meta = nil
	if m, ok := raw["meta"]; ok {
		var meta Meta
		if err := json.Unmarshal(m, &meta); err == nil {
			e.Meta = meta
		}
	}

	e.ScoreAfter = nil
	if s, ok := raw["scoreAfter"]; ok {
		var score Score
		if err := json.Unmarshal(s, &score); err == nil {
			e.ScoreAfter = &score
		}
	}

	return nil
}

// flexString decodes a JSON string, passing bare tokens through unquoted.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

// flexFloat decodes a JSON number that may be string-encoded.
func flexFloat(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseFlexFloat(s)
	}
	return 0, false
}

func parseFlexFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
