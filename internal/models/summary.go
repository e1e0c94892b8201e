package models

import "time"

// ClipTotals counts clips and events inside one sport bucket.
type ClipTotals struct {
	Clips  int `json:"clips"`
	Events int `json:"events"`
}

// PointsTally splits scored points between the tracked athlete ("myKid" in
// the app's rendering layer) and the opponent.
type PointsTally struct {
	Athlete  float64 `json:"myKid"`
	Opponent float64 `json:"opp"`
}

// SideCount is a per-kind counter split by side.
type SideCount struct {
	Athlete  int `json:"myKid"`
	Opponent int `json:"opp"`
}

// SportStats is one sport bucket of an athlete's aggregate statistics.
// When no reducer is registered for the sport key, MissingReducer is set
// and only SportKey and Totals are populated.
type SportStats struct {
	SportKey       string               `json:"sportKey"`
	Totals         ClipTotals           `json:"totals"`
	Points         PointsTally          `json:"points,omitempty"`
	Counters       map[string]SideCount `json:"counters,omitempty"`
	MissingReducer bool                 `json:"missingReducer,omitempty"`
}

// SummaryTotals is the cross-sport roll-up of an athlete summary.
type SummaryTotals struct {
	Videos int `json:"videos"`
	Events int `json:"events"`
}

// AthleteStatsSummary is the fan-in aggregate over all of one athlete's
// clips, built fresh on each request.
type AthleteStatsSummary struct {
	Athlete   string                `json:"athlete"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Totals    SummaryTotals         `json:"totals"`
	BySport   map[string]SportStats `json:"bySport"`
}
