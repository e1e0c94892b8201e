package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Config
const (
	API_URL = "http://localhost:8080/api/v1/clips"
	ATHLETE = "Test Athlete"
)

// Event matches models.Event structure (simplified)
type Event struct {
	T      float64        `json:"t"`
	Key    string         `json:"key"`
	Actor  string         `json:"actor,omitempty"`
	Points float64        `json:"points,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

type Clip struct {
	Athlete string  `json:"athlete"`
	Sport   string  `json:"sport"`
	Style   string  `json:"style"`
	Events  []Event `json:"events"`
}

func main() {
	// A synthetic freestyle match: two takedowns, a passivity point against
	// the opponent, a stall warning with no actor (exercises inference),
	// and a pin to end it.
	clip := Clip{
		Athlete: ATHLETE,
		Sport:   "wrestling",
		Style:   "freestyle",
		Events: []Event{
			{T: 12.4, Key: "takedown", Actor: "home", Points: 2},
			{T: 31.0, Key: "takedown", Actor: "opponent", Points: 2},
			{T: 48.7, Key: "passivity", Actor: "home", Points: 1, Meta: map[string]any{"offender": "opponent"}},
			{T: 61.2, Key: "warning"},
			{T: 95.5, Key: "pin", Actor: "home"},
		},
	}

	payload, err := json.Marshal(clip)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	req, err := http.NewRequest("POST", API_URL, bytes.NewBuffer(payload))
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Body: %s\n", string(body))
}
