package models

type CreateClipRequest struct {
	Athlete          string  `json:"athlete" validate:"required"`
	Sport            string  `json:"sport" validate:"required"`
	Style            string  `json:"style"`
	HomeIsAthlete    *bool   `json:"homeIsAthlete"`
	HomeColorIsGreen bool    `json:"homeColorIsGreen"`
	AppVersion       string  `json:"appVersion"`
	Events           []Event `json:"events"`
}

type AppendEventRequest struct {
	Event Event `json:"event"`
}

type ReplaceEventRequest struct {
	Event Event `json:"event"`
}

type ScoreAtResponse struct {
	T     float64 `json:"t"`
	Score Score   `json:"score"`
}
